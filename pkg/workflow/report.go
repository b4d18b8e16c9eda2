package workflow

import (
	"fmt"
	"io"
)

// Report writes one line per step between a header and a footer.
func Report(w io.Writer, steps []Step) error {
	if _, err := fmt.Fprint(w, "=== Grafana Client ===\n\n"); err != nil {
		return err
	}
	for _, s := range steps {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "\n=== Done ===")
	return err
}

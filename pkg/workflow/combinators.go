package workflow

import (
	"fmt"
	"strings"

	"mbenabda.com/grafana-workflows/pkg/grafana"
	"mbenabda.com/grafana-workflows/pkg/result"
)

const alreadyExists = "already exists"

// AbsorbAlreadyExists turns a duplicate-resource error into a success so that
// re-running the workflow against the same Grafana is not reported as a
// failure. Any other result is returned as is.
func AbsorbAlreadyExists(r result.Result[*grafana.Response]) result.Result[*grafana.Response] {
	return r.Recover(isAlreadyExists, func(result.ErrorInfo) *grafana.Response {
		return grafana.NewResponse(map[string]interface{}{"message": alreadyExists})
	})
}

func isAlreadyExists(info result.ErrorInfo) bool {
	if grafana.IsAlreadyExists(info.Cause) {
		return true
	}
	// Transports that don't report a status code only leave the message.
	return strings.Contains(info.Message, alreadyExists)
}

// Format renders a labeled result as a single report line.
func Format[T any](label string, r result.Result[T]) string {
	if info, isErr := r.Error(); isErr {
		return fmt.Sprintf("[%s] Failure: %s", label, info.Message)
	}
	v, _ := r.Value()
	return fmt.Sprintf("[%s] Success: %v", label, v)
}

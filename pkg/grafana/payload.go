package grafana

import (
	"encoding/json"
	"strings"

	"github.com/gosimple/slug"
)

// Payload is a request body for a create or update call.
type Payload map[string]interface{}

func (p Payload) marshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}(p))
}

// Title returns the dashboard title of a dashboard payload, or the name of a
// datasource payload.
func (p Payload) Title() string {
	if dash, ok := p["dashboard"].(map[string]interface{}); ok {
		if title, ok := dash["title"].(string); ok {
			return title
		}
	}
	if name, ok := p["name"].(string); ok {
		return name
	}
	return ""
}

func (p Payload) Slug() string {
	return slug.Make(strings.ToLower(p.Title()))
}

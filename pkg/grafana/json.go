package grafana

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Response is a decoded Grafana API body. Numbers are kept as json.Number so
// the value can be re-encoded exactly as received.
type Response struct {
	data interface{}
}

func decodeResponse(body []byte) (*Response, error) {
	j := &Response{}
	if len(bytes.TrimSpace(body)) == 0 {
		j.data = map[string]interface{}{}
		return j, nil
	}

	err := j.unmarshalJSON(body)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// NewResponse wraps an already decoded value, typically a map built in code.
func NewResponse(data interface{}) *Response {
	return &Response{data: data}
}

func (j *Response) unmarshalJSON(p []byte) error {
	dec := json.NewDecoder(bytes.NewBuffer(p))
	dec.UseNumber()
	return dec.Decode(&j.data)
}

func (j *Response) marshalJSON() ([]byte, error) {
	return json.Marshal(&j.data)
}

// Value returns the decoded body as-is.
func (j *Response) Value() interface{} {
	return j.data
}

// Get descends into an object field. Missing keys and non-objects yield a
// nil-valued Response so calls can be chained.
func (j *Response) Get(key string) *Response {
	m, err := j.asMap()
	if err == nil {
		if val, ok := m[key]; ok {
			return &Response{val}
		}
	}
	return &Response{nil}
}

func (j *Response) asMap() (map[string]interface{}, error) {
	if m, ok := (j.data).(map[string]interface{}); ok {
		return m, nil
	}
	return nil, errors.New("type assertion to map[string]interface{} failed")
}

func (j *Response) AsArray() ([]interface{}, error) {
	if a, ok := (j.data).([]interface{}); ok {
		return a, nil
	}
	return nil, errors.New("type assertion to []interface{} failed")
}

func (j *Response) AsString() (string, error) {
	if s, ok := (j.data).(string); ok {
		return s, nil
	}
	return "", errors.New("type assertion to string failed")
}

func (j *Response) String() string {
	b, err := j.marshalJSON()
	if err != nil {
		return "<invalid json>"
	}
	return string(b)
}

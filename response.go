package paychangu

import (
	"encoding/json"
	"errors"
)

// Response is a successful (2xx) API answer.
//
// Body is the decoded JSON exactly as sent: map[string]any for objects,
// []any for arrays, nil for an empty body.
type Response struct {
	StatusCode int
	Body       any

	raw []byte
}

// Raw returns the undecoded response body.
func (r *Response) Raw() json.RawMessage {
	return json.RawMessage(r.raw)
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.raw) == 0 {
		return errors.New("paychangu: empty response body")
	}
	return json.Unmarshal(r.raw, v)
}

// Object returns Body as a JSON object, if it is one.
func (r *Response) Object() (map[string]any, bool) {
	obj, ok := r.Body.(map[string]any)
	return obj, ok
}

package formatter

import "encoding/json"

// PrettyJSON marshals v with four-space indentation, the layout API
// consumers already parse.
func PrettyJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "    ")
	return string(b)
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// ErrorJSON renders the caller-facing JSON error envelope.
func ErrorJSON(code int, message string) string {
	return PrettyJSON(errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

package errors

// Response is the JSON envelope the error handler writes for failed
// requests. It mirrors the delivery layer's success envelope so clients
// parse one shape.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and optional details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

package serverutils

// ApiError carries an HTTP status alongside the message so the error
// handler middleware can map service failures to the right response.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

func BadRequest(message string) *ApiError {
	return NewApiError(400, message)
}

func NotFound(message string) *ApiError {
	return NewApiError(404, message)
}

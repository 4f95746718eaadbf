package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)

// HTTPError is the body of all error responses.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

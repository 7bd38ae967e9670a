package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned on a 401, after the stored token was cleared.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

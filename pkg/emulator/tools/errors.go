package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrMethodNotFound matches any *MethodNotFoundError with errors.Is.
var ErrMethodNotFound = errors.New("method not found")

// MethodNotFoundError is returned when no handler is registered under Name.
type MethodNotFoundError struct {
	Name string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("Tool not found: %s", e.Name)
}

// Code is the JSON-RPC error code of the failure.
func (e *MethodNotFoundError) Code() int {
	return mcp.METHOD_NOT_FOUND
}

func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}

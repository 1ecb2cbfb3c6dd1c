package domain

import "fmt"

// Operation is a handle to an in-flight asynchronous management
// action. The platform transitions it from pending to done; a done
// operation may carry an error payload instead of a result.
type Operation struct {
	Name  string          `json:"name"`
	Done  bool            `json:"done"`
	Error *OperationError `json:"error,omitempty"`
}

type OperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation failed (code %d): %s", e.Code, e.Message)
}

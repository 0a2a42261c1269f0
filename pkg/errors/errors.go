package errors

import (
	"errors"
	"fmt"
)

// KernelError is a failure the transaction kernel reports to its caller
// instead of continuing execution.
type KernelError struct {
	Message string
	Cause   error
}

func (e *KernelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *KernelError) Unwrap() error {
	return e.Cause
}

// IsKernelError checks if err, or anything it wraps, is a kernel error
func IsKernelError(err error) bool {
	var kernelErr *KernelError
	return errors.As(err, &kernelErr)
}

// WrapKernelError wraps an existing error as a kernel error
func WrapKernelError(err error, message string) *KernelError {
	return &KernelError{
		Message: message,
		Cause:   err,
	}
}

// KernelErrorf creates a new kernel error with formatted message
func KernelErrorf(format string, args ...interface{}) *KernelError {
	return &KernelError{
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

package services

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrNilClient is returned when a service is built without its AWS client
var ErrNilClient = errors.New("aws client is nil")

// ServiceError represents a failed call to an external AWS service
type ServiceError struct {
	Op       string // AWS operation, e.g. "StartPipelineExecution"
	Resource string // pipeline name or topic ARN
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s failed for %q: %v", e.Op, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError
func NewServiceError(op, resource string, err error) *ServiceError {
	return &ServiceError{
		Op:       op,
		Resource: resource,
		Err:      err,
	}
}

// APIErrorCode returns the AWS error code carried by err, or "" if there is none
func APIErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsServiceError returns true if err wraps a ServiceError
func IsServiceError(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr)
}

package drupal

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrQuery    = errors.New("failed to query content")
	ErrGet      = errors.New("failed to get node")
	ErrList     = errors.New("failed to list content types")
	ErrSearch   = errors.New("failed to search content")
	ErrNotFound = errors.New("not found")
)

// NotFoundError is returned by GetNode when the site answers 404.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("node %s not found", e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StatusError is an upstream non-2xx response.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("request failed with status code %d", e.StatusCode)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func isStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

func isNotFound(err error) bool { return isStatus(err, http.StatusNotFound) }

package gerr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidPeriod is returned when a period selector is not one of the known set.
	ErrInvalidPeriod = errors.New("invalid period")
	// ErrInvalidHorizon is returned when an expiry horizon is not a positive day count.
	ErrInvalidHorizon = errors.New("invalid expiry horizon")
	// ErrDataFetch is returned when the dataset read failed or returned malformed rows.
	ErrDataFetch = errors.New("data fetch failure")
	// ErrUnknownSection is returned when an export asks for a section a report does not have.
	ErrUnknownSection = errors.New("unknown report section")
	// ErrInvalidRequest is returned when request parameters fail validation.
	ErrInvalidRequest = errors.New("invalid request")
)

// DataFetchError names the projection that failed.
type DataFetchError struct {
	Source string
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *DataFetchError) Unwrap() []error {
	return []error{ErrDataFetch, e.Err}
}

// Fetch wraps err as a DataFetchError for source. A nil err stays nil.
func Fetch(source string, err error) error {
	if err == nil {
		return nil
	}
	return &DataFetchError{Source: source, Err: err}
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidHorizon) ||
		errors.Is(err, ErrUnknownSection) ||
		errors.Is(err, ErrInvalidRequest)
}

// HTTPStatus maps an error to the status code a handler should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrDataFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

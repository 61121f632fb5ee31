package buycraft

import (
	"fmt"

	"github.com/shininet/buycraft/pkg/errors"
)

// Status is the numeric code carried in every API response envelope.
type Status int

const (
	StatusOK             Status = 0
	StatusNeedMoreInfo   Status = 100
	StatusSecretNotFound Status = 101
	StatusUnknownAction  Status = 102
)

// Known reports whether s is one of the documented status codes.
func (s Status) Known() bool {
	switch s {
	case StatusOK, StatusNeedMoreInfo, StatusSecretNotFound, StatusUnknownAction:
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNeedMoreInfo:
		return "NEED_MORE_INFO"
	case StatusSecretNotFound:
		return "SECRET_NOT_FOUND"
	case StatusUnknownAction:
		return "UNKNOWN_ACTION"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Description returns the human-readable meaning of the status.
func (s Status) Description() string {
	switch s {
	case StatusOK:
		return "Authenticated with the specified Secret key."
	case StatusNeedMoreInfo:
		return "The specified action requires more information then was provided."
	case StatusSecretNotFound:
		return "The specified Secret key could not be found."
	case StatusUnknownAction:
		return "The specified action does not exist."
	}
	return fmt.Sprintf("The API returned an unknown code: %d.", int(s))
}

// APIError carries the raw envelope of a response whose status code is not
// one the client understands.
type APIError struct {
	Status Status
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", int(e.Status), e.Body)
}

// err converts a non-success status into the matching structured error.
func (s Status) err(body []byte) error {
	switch s {
	case StatusOK:
		return nil
	case StatusNeedMoreInfo:
		return errors.New(errors.ErrCodeNeedMoreInfo, "%s", s.Description())
	case StatusSecretNotFound:
		return errors.New(errors.ErrCodeSecretNotFound, "%s", s.Description())
	case StatusUnknownAction:
		return errors.New(errors.ErrCodeUnknownAction, "%s", s.Description())
	}
	raw := make([]byte, len(body))
	copy(raw, body)
	return errors.Wrap(errors.ErrCodeUnexpectedStatus, &APIError{Status: s, Body: raw}, "%s", s.Description())
}

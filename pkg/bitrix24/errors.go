package bitrix24

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks an empty lookup result (product by name, contact by
// phone/email, user field by title). Test with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrInvalidEntity marks an entity name outside DEAL/LEAD/CONTACT/COMPANY
// passed to the field-metadata operations. Raised before any network call.
var ErrInvalidEntity = errors.New("unsupported entity type")

// HTTPError is a non-2xx response from the portal, before any envelope
// parsing. Body carries the raw response text.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// APIError is a failure reported inside the response envelope.
type APIError struct {
	Code        string
	Description string
}

func (e *APIError) Error() string {
	desc := e.Description
	if desc == "" {
		desc = "unknown"
	}
	return fmt.Sprintf("API error: %s - %s", e.Code, desc)
}

// isDuplicateError reports whether err is Bitrix24 rejecting a contact that
// matches an existing one. The portal exposes no stable machine-readable
// code for this rejection, so the contract is a substring match on the
// rendered API error.
func isDuplicateError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Error()), "duplicate")
}

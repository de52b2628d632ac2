package services

import (
	"errors"

	goa "goa.design/goa/v3/pkg"

	"contactrelay/gen/relay"
)

// ============================================================
// Relay Service Error Helpers
// ============================================================

// RelayBadRequest creates a properly formatted bad request error for relay service
func RelayBadRequest(message string) *goa.ServiceError {
	return relay.MakeBadRequest(errors.New(message))
}

// RelayInternal creates a properly formatted internal error for relay service.
// message is returned to the caller verbatim, so it must be generic.
func RelayInternal(message string) *goa.ServiceError {
	return relay.MakeInternal(errors.New(message))
}

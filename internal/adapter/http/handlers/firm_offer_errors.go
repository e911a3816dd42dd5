package handlers

import (
	"errors"
	"net/http"

	"speaker_bureau/internal/usecase"
	"speaker_bureau/pkg"
)

var (
	errInvalidFirmOfferPayload = pkg.NewDomainErrorSimple("INVALID_FIRM_OFFER_INPUT", "Invalid firm offer payload", http.StatusBadRequest)
	errInvalidDecisionPayload  = pkg.NewDomainErrorSimple("INVALID_DECISION_INPUT", "Invalid speaker decision payload", http.StatusBadRequest)
	errNotFound                = pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
)

// mapFirmOfferError turns a use-case error into the HTTP error body. Token
// failures always produce the generic not-found body so that a caller cannot
// tell a malformed token from an unknown one.
func mapFirmOfferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTokenNotFound):
		return errNotFound
	case errors.Is(err, usecase.ErrFirmOfferNotFound):
		return pkg.NewDomainErrorSimple("FIRM_OFFER_NOT_FOUND", "Firm offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyDecided):
		return pkg.NewDomainErrorSimple("ALREADY_DECIDED", "The speaker has already responded", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingRequiredField):
		return pkg.NewDomainError("MISSING_REQUIRED_FIELD", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConflictingSources):
		return pkg.NewDomainErrorSimple("CONFLICTING_SOURCES", "Only one of deal_id or proposal_id may be set", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidHoldExpiry):
		return pkg.NewDomainErrorSimple("INVALID_HOLD_EXPIRY", "hold_expires_at must be in the future", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Unknown status filter", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFirmOfferID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

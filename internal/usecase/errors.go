package usecase

import "errors"

var (
	ErrFirmOfferNotFound    = errors.New("firm offer not found")
	ErrInvalidFirmOfferID   = errors.New("invalid firm offer id")
	ErrTokenNotFound        = errors.New("token not found")
	ErrInvalidTransition    = errors.New("invalid firm offer transition")
	ErrAlreadyDecided       = errors.New("speaker already decided")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrDealNotFound         = errors.New("deal not found")
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrConflictingSources   = errors.New("only one of deal_id or proposal_id may be set")
	ErrInvalidHoldExpiry    = errors.New("hold expiry must be after creation")
	ErrInvalidStatusFilter  = errors.New("invalid status filter")
)

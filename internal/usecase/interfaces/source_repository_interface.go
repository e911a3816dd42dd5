package interfaces

import (
	"context"

	"speaker_bureau/internal/domain/entities"
)

//go:generate mockgen -source=source_repository_interface.go -destination=mocks/source_repository_interface_mock.go -package=mock_interfaces

// IDealRepository is the read-only CRM deal lookup used by firm-offer derivation.
// A missing deal is a zero Deal and nil error.
type IDealRepository interface {
	GetByID(ctx context.Context, id string) (entities.Deal, error)
}

// IProposalRepository is the read-only proposal lookup used by firm-offer derivation.
// A missing proposal is a zero Proposal and nil error.
type IProposalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
}

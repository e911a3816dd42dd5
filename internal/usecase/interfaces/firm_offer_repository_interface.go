package interfaces

import (
	"context"
	"errors"
	"time"

	"speaker_bureau/internal/domain/entities"
)

//go:generate mockgen -source=firm_offer_repository_interface.go -destination=mocks/firm_offer_repository_interface_mock.go -package=mock_interfaces

// ErrConditionFailed is returned by guarded writes whose precondition no longer
// holds. The current record is returned alongside it.
var ErrConditionFailed = errors.New("conditional write rejected")

// IFirmOfferRepository abstracts firm-offer persistence.
//
// Conventions shared by every implementation:
//   - reads return a zero FirmOffer (empty ID) and nil error when nothing matches
//   - guarded writes are a single atomic read-modify-write; when the guard fails
//     they return the current record and ErrConditionFailed
//   - set-once timestamps are only written when still null
type IFirmOfferRepository interface {
	Create(ctx context.Context, o entities.FirmOffer) (entities.FirmOffer, error)
	GetByID(ctx context.Context, id string) (entities.FirmOffer, error)
	GetByClientToken(ctx context.Context, token string) (entities.FirmOffer, error)
	GetBySpeakerToken(ctx context.Context, token string) (entities.FirmOffer, error)
	List(ctx context.Context) ([]entities.FirmOffer, error)

	// UpdateDocuments rewrites the sub-documents while the offer is undecided and
	// its status is one of allowed.
	UpdateDocuments(ctx context.Context, id string, docs entities.FirmOfferDocuments, allowed []entities.FirmOfferStatus, at time.Time) (entities.FirmOffer, error)
	// MarkSubmitted moves a submittable offer to submitted; submitted_at is set once.
	MarkSubmitted(ctx context.Context, id string, at time.Time) (entities.FirmOffer, error)
	// MarkSentToSpeaker moves an undecided sendable offer to sent_to_speaker;
	// sent_to_speaker_at and the speaker token are set once.
	MarkSentToSpeaker(ctx context.Context, id, speakerToken, speakerEmail string, at time.Time) (entities.FirmOffer, error)
	// MarkSpeakerViewed sets speaker_viewed_at when still null.
	MarkSpeakerViewed(ctx context.Context, id string, at time.Time) (entities.FirmOffer, error)
	// RecordSpeakerDecision writes the decision only when the offer is
	// sent_to_speaker and speaker_confirmed is still null.
	RecordSpeakerDecision(ctx context.Context, id string, d entities.SpeakerDecision) (entities.FirmOffer, error)
	ResetHold(ctx context.Context, id string, holdExpiresAt, at time.Time) (entities.FirmOffer, error)
}

package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=firm_offer_usecase.go -destination=../adapter/http/handlers/mocks/firm_offer_usecase_mock.go -package=mocks

// CreateFirmOfferInput is the admin creation command. At most one of DealID
// and ProposalID may be set; with neither the offer is entered manually.
type CreateFirmOfferInput struct {
	DealID        string
	ProposalID    string
	Manual        ManualFields
	HoldExpiresAt *time.Time
}

type SendToSpeakerResult struct {
	Offer            entities.FirmOffer
	SpeakerReviewURL string
}

// IFirmOfferUseCase exposes the firm-offer lifecycle to the three surfaces:
//   - staff, addressing offers by id
//   - the client, through the client access token
//   - the speaker, through the speaker review token
type IFirmOfferUseCase interface {
	Create(ctx context.Context, in CreateFirmOfferInput) (entities.FirmOffer, error)
	GetByID(ctx context.Context, id string) (entities.FirmOffer, error)
	List(ctx context.Context, status entities.DisplayStatus) ([]entities.FirmOffer, error)
	UpdateDocuments(ctx context.Context, id string, docs entities.FirmOfferDocuments) (entities.FirmOffer, error)
	Submit(ctx context.Context, id string) (entities.FirmOffer, error)
	SendToSpeaker(ctx context.Context, id, speakerEmail string) (SendToSpeakerResult, error)
	ResetHold(ctx context.Context, id string) (entities.FirmOffer, error)

	GetForClient(ctx context.Context, token string) (ClientAccess, error)
	UpdateDocumentsByClient(ctx context.Context, token string, docs entities.FirmOfferDocuments) (entities.FirmOffer, error)
	SubmitByClient(ctx context.Context, token string) (entities.FirmOffer, error)

	OpenSpeakerReview(ctx context.Context, token string) (SpeakerAccess, error)
	RecordSpeakerDecision(ctx context.Context, token string, confirmed bool, notes string) (entities.FirmOffer, error)
}

type FirmOfferUseCase struct {
	repo      interfaces.IFirmOfferRepository
	deals     interfaces.IDealRepository
	proposals interfaces.IProposalRepository
	notifier  interfaces.INotificationDispatcher
	access    *TokenAccessController
	links     FirmOfferLinks
	log       zerolog.Logger
	now       func() time.Time
}

var _ IFirmOfferUseCase = (*FirmOfferUseCase)(nil)

func NewFirmOfferUseCase(
	repo interfaces.IFirmOfferRepository,
	deals interfaces.IDealRepository,
	proposals interfaces.IProposalRepository,
	notifier interfaces.INotificationDispatcher,
	links FirmOfferLinks,
	log zerolog.Logger,
) *FirmOfferUseCase {
	return &FirmOfferUseCase{
		repo:      repo,
		deals:     deals,
		proposals: proposals,
		notifier:  notifier,
		access:    NewTokenAccessController(repo),
		links:     links,
		log:       log.With().Str("component", "firm_offer_usecase").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *FirmOfferUseCase) Create(ctx context.Context, in CreateFirmOfferInput) (entities.FirmOffer, error) {
	source, err := SelectSource(in.DealID, in.ProposalID)
	if err != nil {
		return entities.FirmOffer{}, err
	}

	var docs entities.FirmOfferDocuments
	offer := entities.FirmOffer{}
	switch source {
	case FirmOfferSourceDeal:
		id := strings.TrimSpace(in.DealID)
		deal, err := u.deals.GetByID(ctx, id)
		if err != nil {
			return entities.FirmOffer{}, err
		}
		if deal.ID == "" {
			return entities.FirmOffer{}, ErrDealNotFound
		}
		docs = DeriveFromDeal(deal)
		offer.DealID = deal.ID
	case FirmOfferSourceProposal:
		id := strings.TrimSpace(in.ProposalID)
		proposal, err := u.proposals.GetByID(ctx, id)
		if err != nil {
			return entities.FirmOffer{}, err
		}
		if proposal.ID == "" {
			return entities.FirmOffer{}, ErrProposalNotFound
		}
		docs = DeriveFromProposal(proposal)
		offer.ProposalID = proposal.ID
	}

	docs = ApplyManualFields(docs, in.Manual)
	if err := ValidateRequired(docs); err != nil {
		return entities.FirmOffer{}, err
	}

	now := u.now()
	hold := entities.HoldExpiry(now)
	if in.HoldExpiresAt != nil {
		if !in.HoldExpiresAt.After(now) {
			return entities.FirmOffer{}, ErrInvalidHoldExpiry
		}
		hold = in.HoldExpiresAt.UTC()
	}

	clientToken, err := newAccessToken()
	if err != nil {
		return entities.FirmOffer{}, err
	}
	speakerToken, err := newAccessToken()
	if err != nil {
		return entities.FirmOffer{}, err
	}

	offer.ID = uuid.NewString()
	offer.Status = entities.FirmOfferStatusOutForDelivery
	offer.ClientAccessToken = clientToken
	offer.SpeakerReviewToken = speakerToken
	offer.CreatedAt = now
	offer.UpdatedAt = now
	offer.HoldExpiresAt = hold
	offer.FirmOfferDocuments = docs

	created, err := u.repo.Create(ctx, offer)
	if err != nil {
		u.log.Error().Err(err).Str("source", string(source)).Msg("firm offer create failed")
		return entities.FirmOffer{}, err
	}
	u.log.Info().
		Str("offer_id", created.ID).
		Str("source", string(source)).
		Time("hold_expires_at", created.HoldExpiresAt).
		Msg("firm offer created")

	u.notify(ctx, interfaces.NotificationEventCreated, created, created.EventOverview.ClientEmail, u.links.ClientURL(created.ClientAccessToken))
	return created, nil
}

func (u *FirmOfferUseCase) GetByID(ctx context.Context, id string) (entities.FirmOffer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FirmOffer{}, ErrInvalidFirmOfferID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if o.ID == "" {
		return entities.FirmOffer{}, ErrFirmOfferNotFound
	}
	return o, nil
}

// List returns every offer, newest first, optionally narrowed to one display status.
func (u *FirmOfferUseCase) List(ctx context.Context, status entities.DisplayStatus) ([]entities.FirmOffer, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]entities.FirmOffer, 0, len(all))
	for _, o := range all {
		if status != "" && entities.DeriveStatus(o, now) != status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *FirmOfferUseCase) UpdateDocuments(ctx context.Context, id string, docs entities.FirmOfferDocuments) (entities.FirmOffer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if !current.AdminCanEdit() {
		return entities.FirmOffer{}, ErrInvalidTransition
	}

	docs = docs.Normalize()
	if err := ValidateRequired(docs); err != nil {
		return entities.FirmOffer{}, err
	}

	updated, err := u.repo.UpdateDocuments(ctx, current.ID, docs, entities.AllFirmOfferStatuses, u.now())
	return guarded(updated, err, ErrInvalidTransition, ErrFirmOfferNotFound)
}

func (u *FirmOfferUseCase) Submit(ctx context.Context, id string) (entities.FirmOffer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	return u.submit(ctx, current, ErrFirmOfferNotFound)
}

func (u *FirmOfferUseCase) submit(ctx context.Context, current entities.FirmOffer, notFound error) (entities.FirmOffer, error) {
	if !current.CanSubmit() {
		return entities.FirmOffer{}, ErrInvalidTransition
	}

	updated, err := u.repo.MarkSubmitted(ctx, current.ID, u.now())
	updated, err = guarded(updated, err, ErrInvalidTransition, notFound)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	u.log.Info().Str("offer_id", updated.ID).Str("status", string(updated.Status)).Msg("firm offer submitted")
	return updated, nil
}

// SendToSpeaker moves the offer to sent_to_speaker and returns the review URL.
// The existing speaker token is reused; one is minted only for records that
// never had one.
func (u *FirmOfferUseCase) SendToSpeaker(ctx context.Context, id, speakerEmail string) (SendToSpeakerResult, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return SendToSpeakerResult{}, err
	}
	if !current.CanSendToSpeaker() {
		return SendToSpeakerResult{}, ErrInvalidTransition
	}

	recipient := firstNonEmpty(speakerEmail, current.SpeakerEmail, current.SpeakerProgram.SpeakerEmail)

	token := current.SpeakerReviewToken
	if token == "" {
		if token, err = newAccessToken(); err != nil {
			return SendToSpeakerResult{}, err
		}
	}

	updated, err := u.repo.MarkSentToSpeaker(ctx, current.ID, token, recipient, u.now())
	updated, err = guarded(updated, err, ErrInvalidTransition, ErrFirmOfferNotFound)
	if err != nil {
		return SendToSpeakerResult{}, err
	}

	reviewURL := u.links.SpeakerReviewURL(updated.SpeakerReviewToken)
	u.log.Info().Str("offer_id", updated.ID).Bool("has_recipient", recipient != "").Msg("firm offer sent to speaker")
	u.notify(ctx, interfaces.NotificationEventSentToSpeaker, updated, recipient, reviewURL)

	return SendToSpeakerResult{Offer: updated, SpeakerReviewURL: reviewURL}, nil
}

// ResetHold restarts the hold window from now. It is the only operation that
// moves hold_expires_at after creation.
func (u *FirmOfferUseCase) ResetHold(ctx context.Context, id string) (entities.FirmOffer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if current.Decided() {
		return entities.FirmOffer{}, ErrInvalidTransition
	}

	now := u.now()
	updated, err := u.repo.ResetHold(ctx, current.ID, entities.HoldExpiry(now), now)
	updated, err = guarded(updated, err, ErrInvalidTransition, ErrFirmOfferNotFound)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	u.log.Info().Str("offer_id", updated.ID).Time("hold_expires_at", updated.HoldExpiresAt).Msg("firm offer hold reset")
	return updated, nil
}

func (u *FirmOfferUseCase) GetForClient(ctx context.Context, token string) (ClientAccess, error) {
	return u.access.ResolveClient(ctx, token)
}

func (u *FirmOfferUseCase) UpdateDocumentsByClient(ctx context.Context, token string, docs entities.FirmOfferDocuments) (entities.FirmOffer, error) {
	access, err := u.access.ResolveClient(ctx, token)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if !access.CanEdit {
		return entities.FirmOffer{}, ErrInvalidTransition
	}

	docs = docs.Normalize()
	if err := ValidateRequired(docs); err != nil {
		return entities.FirmOffer{}, err
	}

	updated, err := u.repo.UpdateDocuments(ctx, access.Offer.ID, docs, entities.ClientEditableStatuses, u.now())
	return guarded(updated, err, ErrInvalidTransition, ErrTokenNotFound)
}

func (u *FirmOfferUseCase) SubmitByClient(ctx context.Context, token string) (entities.FirmOffer, error) {
	access, err := u.access.ResolveClient(ctx, token)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	return u.submit(ctx, access.Offer, ErrTokenNotFound)
}

// OpenSpeakerReview records the first speaker view. Views of offers that were
// never sent to the speaker are not recorded.
func (u *FirmOfferUseCase) OpenSpeakerReview(ctx context.Context, token string) (SpeakerAccess, error) {
	access, err := u.access.ResolveSpeaker(ctx, token)
	if err != nil {
		return SpeakerAccess{}, err
	}
	if access.Offer.Status != entities.FirmOfferStatusSentToSpeaker || access.Offer.SpeakerViewedAt != nil {
		return access, nil
	}

	updated, err := u.repo.MarkSpeakerViewed(ctx, access.Offer.ID, u.now())
	updated, err = guarded(updated, err, ErrTokenNotFound, ErrTokenNotFound)
	if err != nil {
		return SpeakerAccess{}, err
	}
	u.log.Info().Str("offer_id", updated.ID).Msg("speaker review opened")
	return SpeakerAccess{Offer: updated}, nil
}

// RecordSpeakerDecision stores the speaker's answer exactly once. A replay is
// rejected with ErrAlreadyDecided whatever its value.
func (u *FirmOfferUseCase) RecordSpeakerDecision(ctx context.Context, token string, confirmed bool, notes string) (entities.FirmOffer, error) {
	access, err := u.access.ResolveSpeaker(ctx, token)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	current := access.Offer
	if entities.DeriveStatus(current, u.now()).Terminal() {
		return entities.FirmOffer{}, ErrAlreadyDecided
	}
	if !current.CanRecordDecision() {
		return entities.FirmOffer{}, ErrInvalidTransition
	}

	updated, err := u.repo.RecordSpeakerDecision(ctx, current.ID, entities.SpeakerDecision{
		Confirmed:   confirmed,
		Notes:       strings.TrimSpace(notes),
		RespondedAt: u.now(),
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		if updated.Decided() {
			u.log.Warn().Str("offer_id", current.ID).Msg("speaker decision replay rejected")
			return entities.FirmOffer{}, ErrAlreadyDecided
		}
		return entities.FirmOffer{}, ErrInvalidTransition
	}
	updated, err = guarded(updated, err, ErrInvalidTransition, ErrTokenNotFound)
	if err != nil {
		return entities.FirmOffer{}, err
	}

	u.log.Info().Str("offer_id", updated.ID).Bool("confirmed", confirmed).Msg("speaker decision recorded")
	u.notify(ctx, interfaces.NotificationEventSpeakerResponded, updated, updated.EventOverview.ClientEmail, u.links.ClientURL(updated.ClientAccessToken))
	return updated, nil
}

func (u *FirmOfferUseCase) notify(ctx context.Context, event interfaces.NotificationEvent, o entities.FirmOffer, recipient, link string) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, interfaces.NotificationIntent{
		Event:            event,
		OfferID:          o.ID,
		RecipientEmail:   recipient,
		URL:              link,
		EventName:        o.EventOverview.EventName,
		ClientName:       o.EventOverview.ClientName,
		SpeakerName:      o.SpeakerProgram.RequestedSpeaker,
		SpeakerConfirmed: o.SpeakerConfirmed,
		OccurredAt:       u.now(),
	})
}

// guarded maps the outcome of a conditional repository write.
func guarded(o entities.FirmOffer, err error, rejected, notFound error) (entities.FirmOffer, error) {
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.FirmOffer{}, rejected
	}
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if o.ID == "" {
		return entities.FirmOffer{}, notFound
	}
	return o, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

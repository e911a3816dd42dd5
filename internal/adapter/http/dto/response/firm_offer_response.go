package response

import (
	"time"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase"
)

// FirmOfferResponse is the full record plus the read-time hold and status.
// Raw tokens are only filled in on the creation response; afterwards staff
// get the links instead.
type FirmOfferResponse struct {
	ID                 string             `json:"id"`
	ProposalID         string             `json:"proposal_id,omitempty"`
	DealID             string             `json:"deal_id,omitempty"`
	Status             string             `json:"status"`
	DisplayStatus      string             `json:"display_status"`
	DisplayStatusLabel string             `json:"display_status_label"`
	Hold               entities.HoldState `json:"hold"`
	SpeakerEmail       string             `json:"speaker_email,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	SubmittedAt        *time.Time         `json:"submitted_at"`
	SentToSpeakerAt    *time.Time         `json:"sent_to_speaker_at"`
	SpeakerViewedAt    *time.Time         `json:"speaker_viewed_at"`
	SpeakerResponseAt  *time.Time         `json:"speaker_response_at"`
	SpeakerConfirmed   *bool              `json:"speaker_confirmed"`
	SpeakerNotes       string             `json:"speaker_notes,omitempty"`
	ClientAccessToken  string             `json:"client_access_token,omitempty"`
	SpeakerReviewToken string             `json:"speaker_review_token,omitempty"`
	ClientURL          string             `json:"client_url,omitempty"`
	SpeakerReviewURL   string             `json:"speaker_review_url,omitempty"`

	entities.FirmOfferDocuments
}

func FromFirmOffer(o entities.FirmOffer, now time.Time) FirmOfferResponse {
	display := entities.DeriveStatus(o, now)
	return FirmOfferResponse{
		ID:                 o.ID,
		ProposalID:         o.ProposalID,
		DealID:             o.DealID,
		Status:             string(o.Status),
		DisplayStatus:      string(display),
		DisplayStatusLabel: display.Label(),
		Hold:               o.Hold(now),
		SpeakerEmail:       o.SpeakerEmail,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		SubmittedAt:        o.SubmittedAt,
		SentToSpeakerAt:    o.SentToSpeakerAt,
		SpeakerViewedAt:    o.SpeakerViewedAt,
		SpeakerResponseAt:  o.SpeakerResponseAt,
		SpeakerConfirmed:   o.SpeakerConfirmed,
		SpeakerNotes:       o.SpeakerNotes,
		FirmOfferDocuments: o.FirmOfferDocuments,
	}
}

// FromFirmOfferWithLinks is the staff view: both public links are included.
func FromFirmOfferWithLinks(o entities.FirmOffer, now time.Time, links usecase.FirmOfferLinks) FirmOfferResponse {
	r := FromFirmOffer(o, now)
	if o.ClientAccessToken != "" {
		r.ClientURL = links.ClientURL(o.ClientAccessToken)
	}
	if o.SpeakerReviewToken != "" {
		r.SpeakerReviewURL = links.SpeakerReviewURL(o.SpeakerReviewToken)
	}
	return r
}

// FromCreatedFirmOffer is returned once, to the staff member who created the
// offer, and carries both tokens.
func FromCreatedFirmOffer(o entities.FirmOffer, now time.Time, links usecase.FirmOfferLinks) FirmOfferResponse {
	r := FromFirmOfferWithLinks(o, now, links)
	r.ClientAccessToken = o.ClientAccessToken
	r.SpeakerReviewToken = o.SpeakerReviewToken
	return r
}

func FromFirmOffers(list []entities.FirmOffer, now time.Time, links usecase.FirmOfferLinks) []FirmOfferResponse {
	out := make([]FirmOfferResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromFirmOfferWithLinks(o, now, links))
	}
	return out
}

// ClientFirmOfferResponse is what the client token returns.
type ClientFirmOfferResponse struct {
	FirmOfferResponse
	CanEdit bool `json:"can_edit"`
}

func FromClientAccess(a usecase.ClientAccess, now time.Time) ClientFirmOfferResponse {
	return ClientFirmOfferResponse{FirmOfferResponse: FromFirmOffer(a.Offer, now), CanEdit: a.CanEdit}
}

type SpeakerReviewResponse struct {
	entities.SpeakerReview
	Hold               entities.HoldState `json:"hold"`
	DisplayStatus      string             `json:"display_status"`
	DisplayStatusLabel string             `json:"display_status_label"`
	CanRespond         bool               `json:"can_respond"`
}

func FromSpeakerAccess(a usecase.SpeakerAccess, now time.Time) SpeakerReviewResponse {
	display := entities.DeriveStatus(a.Offer, now)
	return SpeakerReviewResponse{
		SpeakerReview:      a.Review(),
		Hold:               a.Offer.Hold(now),
		DisplayStatus:      string(display),
		DisplayStatusLabel: display.Label(),
		CanRespond:         a.Offer.CanRecordDecision(),
	}
}

// SpeakerDecisionResponse acknowledges a recorded decision.
type SpeakerDecisionResponse struct {
	ID                string     `json:"id"`
	SpeakerConfirmed  *bool      `json:"speaker_confirmed"`
	SpeakerResponseAt *time.Time `json:"speaker_response_at"`
	DisplayStatus     string     `json:"display_status"`
}

func FromSpeakerDecision(o entities.FirmOffer, now time.Time) SpeakerDecisionResponse {
	return SpeakerDecisionResponse{
		ID:                o.ID,
		SpeakerConfirmed:  o.SpeakerConfirmed,
		SpeakerResponseAt: o.SpeakerResponseAt,
		DisplayStatus:     string(entities.DeriveStatus(o, now)),
	}
}

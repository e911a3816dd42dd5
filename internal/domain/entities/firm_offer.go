package entities

import "time"

// FirmOfferStatus is the persisted lifecycle status of a firm offer.
//
// The statuses form a partial order:
//
//	draft < out_for_delivery | submitted < sent_to_speaker
//
// The externally visible status is derived (see DeriveStatus) and also takes the
// hold window and the speaker decision into account.
type FirmOfferStatus string

const (
	FirmOfferStatusDraft          FirmOfferStatus = "draft"
	FirmOfferStatusOutForDelivery FirmOfferStatus = "out_for_delivery"
	FirmOfferStatusSubmitted      FirmOfferStatus = "submitted"
	FirmOfferStatusSentToSpeaker  FirmOfferStatus = "sent_to_speaker"
)

func (s FirmOfferStatus) Valid() bool {
	switch s {
	case FirmOfferStatusDraft, FirmOfferStatusOutForDelivery, FirmOfferStatusSubmitted, FirmOfferStatusSentToSpeaker:
		return true
	}
	return false
}

// Rank places the status in the lifecycle partial order. out_for_delivery and
// submitted share a rank.
func (s FirmOfferStatus) Rank() int {
	switch s {
	case FirmOfferStatusOutForDelivery, FirmOfferStatusSubmitted:
		return 1
	case FirmOfferStatusSentToSpeaker:
		return 2
	default:
		return 0
	}
}

// FirmOffer is the firm-offer document persisted by the bureau.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI client_access_token-index: speaker_access_token (legacy attribute name,
//     holds the client-facing token)
//   - GSI speaker_review_token-index: speaker_review_token
//
// The two tokens are never interchangeable: the client token only resolves the
// client surface and the speaker token only resolves the speaker surface.
type FirmOffer struct {
	ID         string          `json:"id"`
	ProposalID string          `json:"proposal_id,omitempty"`
	DealID     string          `json:"deal_id,omitempty"`
	Status     FirmOfferStatus `json:"status"`

	ClientAccessToken  string `json:"client_access_token"`
	SpeakerReviewToken string `json:"speaker_review_token"`
	SpeakerEmail       string `json:"speaker_email,omitempty"`

	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	HoldExpiresAt time.Time `json:"hold_expires_at"`

	SubmittedAt       *time.Time `json:"submitted_at"`
	SentToSpeakerAt   *time.Time `json:"sent_to_speaker_at"`
	SpeakerViewedAt   *time.Time `json:"speaker_viewed_at"`
	SpeakerResponseAt *time.Time `json:"speaker_response_at"`
	SpeakerConfirmed  *bool      `json:"speaker_confirmed"`
	SpeakerNotes      string     `json:"speaker_notes,omitempty"`

	FirmOfferDocuments
}

// SpeakerDecision is the speaker's terminal confirm/decline answer.
type SpeakerDecision struct {
	Confirmed   bool
	Notes       string
	RespondedAt time.Time
}

// Decided reports whether the speaker already answered.
func (o FirmOffer) Decided() bool {
	return o.SpeakerConfirmed != nil
}

// CanSubmit reports whether the offer may move to submitted. Re-submitting a
// submitted offer is accepted and keeps the original submitted_at.
func (o FirmOffer) CanSubmit() bool {
	switch o.Status {
	case FirmOfferStatusDraft, FirmOfferStatusOutForDelivery, FirmOfferStatusSubmitted:
		return true
	}
	return false
}

// CanSendToSpeaker reports whether the offer may be (re)sent to the speaker.
// Re-sending while awaiting an answer is allowed; after the speaker answered it is not.
func (o FirmOffer) CanSendToSpeaker() bool {
	if o.Decided() {
		return false
	}
	return o.Status.Rank() >= FirmOfferStatusOutForDelivery.Rank()
}

// CanRecordDecision reports whether the speaker may confirm or decline now.
func (o FirmOffer) CanRecordDecision() bool {
	return o.Status == FirmOfferStatusSentToSpeaker && !o.Decided()
}

// ClientCanEdit reports whether the client surface may write the documents.
func (o FirmOffer) ClientCanEdit() bool {
	return !o.Decided() && containsStatus(ClientEditableStatuses, o.Status)
}

// AdminCanEdit reports whether staff may still rewrite the documents.
func (o FirmOffer) AdminCanEdit() bool {
	return !o.Decided()
}

var (
	ClientEditableStatuses = []FirmOfferStatus{FirmOfferStatusDraft, FirmOfferStatusOutForDelivery, FirmOfferStatusSubmitted}
	SubmittableStatuses    = []FirmOfferStatus{FirmOfferStatusDraft, FirmOfferStatusOutForDelivery, FirmOfferStatusSubmitted}
	SendableStatuses       = []FirmOfferStatus{FirmOfferStatusOutForDelivery, FirmOfferStatusSubmitted, FirmOfferStatusSentToSpeaker}
	AllFirmOfferStatuses   = []FirmOfferStatus{FirmOfferStatusDraft, FirmOfferStatusOutForDelivery, FirmOfferStatusSubmitted, FirmOfferStatusSentToSpeaker}
)

func containsStatus(list []FirmOfferStatus, s FirmOfferStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package entities

import (
	"math"
	"time"
)

// HoldPeriod is how long a speaker's availability is held after creation.
const HoldPeriod = 14 * 24 * time.Hour

const day = 24 * time.Hour

// HoldState is the read-time view of the hold window. It is never persisted.
type HoldState struct {
	ExpiresAt     time.Time `json:"expires_at"`
	Expired       bool      `json:"expired"`
	DaysRemaining int       `json:"days_remaining"`
}

// HoldExpiry returns the default hold boundary for an offer created at createdAt.
func HoldExpiry(createdAt time.Time) time.Time {
	return createdAt.Add(HoldPeriod)
}

// ComputeHold evaluates the hold window at now. Days are rounded up, so an
// offer with a few hours left still reports one day; once the rounded value is
// negative the hold is expired and reports zero days.
func ComputeHold(expiresAt, now time.Time) HoldState {
	remaining := int(math.Ceil(float64(expiresAt.Sub(now)) / float64(day)))
	if remaining < 0 {
		return HoldState{ExpiresAt: expiresAt, Expired: true, DaysRemaining: 0}
	}
	return HoldState{ExpiresAt: expiresAt, DaysRemaining: remaining}
}

func (o FirmOffer) Hold(now time.Time) HoldState {
	return ComputeHold(o.HoldExpiresAt, now)
}

// DisplayStatus is the single externally visible status of a firm offer.
type DisplayStatus string

const (
	DisplayStatusSpeakerConfirmed DisplayStatus = "speaker_confirmed"
	DisplayStatusSpeakerDeclined  DisplayStatus = "speaker_declined"
	DisplayStatusHoldExpired      DisplayStatus = "hold_expired"
	DisplayStatusAwaitingSpeaker  DisplayStatus = "awaiting_speaker"
	DisplayStatusReadyForReview   DisplayStatus = "ready_for_review"
	DisplayStatusOutForDelivery   DisplayStatus = "out_for_delivery"
	DisplayStatusDraft            DisplayStatus = "draft"
)

var displayLabels = map[DisplayStatus]string{
	DisplayStatusSpeakerConfirmed: "Speaker Confirmed",
	DisplayStatusSpeakerDeclined:  "Speaker Declined",
	DisplayStatusHoldExpired:      "Hold Expired",
	DisplayStatusAwaitingSpeaker:  "Awaiting Speaker",
	DisplayStatusReadyForReview:   "Ready for Review",
	DisplayStatusOutForDelivery:   "Out for Delivery",
	DisplayStatusDraft:            "Draft",
}

func (d DisplayStatus) Label() string {
	return displayLabels[d]
}

func (d DisplayStatus) Valid() bool {
	_, ok := displayLabels[d]
	return ok
}

// Terminal reports whether the status is a final speaker answer.
func (d DisplayStatus) Terminal() bool {
	return d == DisplayStatusSpeakerConfirmed || d == DisplayStatusSpeakerDeclined
}

// DeriveStatus combines the persisted status, the hold window and the speaker
// decision. The first matching rule wins:
//
//  1. speaker confirmed
//  2. speaker declined
//  3. hold expired
//  4. sent_to_speaker -> awaiting speaker
//  5. submitted       -> ready for review
//  6. out_for_delivery
//  7. draft
func DeriveStatus(o FirmOffer, now time.Time) DisplayStatus {
	if o.SpeakerConfirmed != nil {
		if *o.SpeakerConfirmed {
			return DisplayStatusSpeakerConfirmed
		}
		return DisplayStatusSpeakerDeclined
	}
	if o.Hold(now).Expired {
		return DisplayStatusHoldExpired
	}
	switch o.Status {
	case FirmOfferStatusSentToSpeaker:
		return DisplayStatusAwaitingSpeaker
	case FirmOfferStatusSubmitted:
		return DisplayStatusReadyForReview
	case FirmOfferStatusOutForDelivery:
		return DisplayStatusOutForDelivery
	default:
		return DisplayStatusDraft
	}
}

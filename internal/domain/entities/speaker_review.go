package entities

import "time"

// SpeakerReview is what the speaker surface is allowed to see: the program,
// logistics and the fee, but no client billing contact or payment terms.
type SpeakerReview struct {
	ID                    string                `json:"id"`
	EventName             string                `json:"event_name"`
	EventDate             string                `json:"event_date"`
	EventLocation         string                `json:"event_location"`
	VenueName             string                `json:"venue_name"`
	VenueAddress          string                `json:"venue_address"`
	EventType             string                `json:"event_type"`
	AttendeeCount         int                   `json:"attendee_count"`
	AudienceDescription   string                `json:"audience_description"`
	SpeakerProgram        SpeakerProgram        `json:"speaker_program"`
	EventSchedule         EventSchedule         `json:"event_schedule"`
	TechnicalRequirements TechnicalRequirements `json:"technical_requirements"`
	TravelAccommodation   TravelAccommodation   `json:"travel_accommodation"`
	AdditionalInfo        AdditionalInfo        `json:"additional_info"`
	SpeakerFee            float64               `json:"speaker_fee"`
	Currency              string                `json:"currency"`
	HoldExpiresAt         time.Time             `json:"hold_expires_at"`
	SpeakerConfirmed      *bool                 `json:"speaker_confirmed"`
	SpeakerResponseAt     *time.Time            `json:"speaker_response_at"`
	SpeakerNotes          string                `json:"speaker_notes,omitempty"`
}

// SpeakerReview projects the offer onto the speaker-facing field set.
func (o FirmOffer) SpeakerReview() SpeakerReview {
	ov := o.EventOverview
	return SpeakerReview{
		ID:                    o.ID,
		EventName:             ov.EventName,
		EventDate:             ov.EventDate,
		EventLocation:         ov.EventLocation,
		VenueName:             ov.VenueName,
		VenueAddress:          ov.VenueAddress,
		EventType:             ov.EventType,
		AttendeeCount:         ov.AttendeeCount,
		AudienceDescription:   ov.AudienceDescription,
		SpeakerProgram:        o.SpeakerProgram,
		EventSchedule:         o.EventSchedule,
		TechnicalRequirements: o.TechnicalRequirements,
		TravelAccommodation:   o.TravelAccommodation,
		AdditionalInfo:        o.AdditionalInfo,
		SpeakerFee:            o.FinancialDetails.SpeakerFee,
		Currency:              o.FinancialDetails.Currency,
		HoldExpiresAt:         o.HoldExpiresAt,
		SpeakerConfirmed:      o.SpeakerConfirmed,
		SpeakerResponseAt:     o.SpeakerResponseAt,
		SpeakerNotes:          o.SpeakerNotes,
	}
}

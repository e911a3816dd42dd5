package request

import (
	"strings"
	"time"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase"
)

// CreateFirmOfferRequest is the staff creation form. deal_id and proposal_id
// are mutually exclusive; any typed field overrides the derived value.
type CreateFirmOfferRequest struct {
	DealID        string     `json:"deal_id"`
	ProposalID    string     `json:"proposal_id"`
	HoldExpiresAt *time.Time `json:"hold_expires_at"`

	ClientName     string   `json:"client_name"`
	ClientEmail    string   `json:"client_email" binding:"omitempty,email"`
	ClientPhone    string   `json:"client_phone"`
	CompanyName    string   `json:"company_name"`
	EventName      string   `json:"event_name"`
	EventDate      string   `json:"event_date"`
	EventLocation  string   `json:"event_location"`
	EventType      string   `json:"event_type"`
	AttendeeCount  int      `json:"attendee_count" binding:"gte=0"`
	SpeakerName    string   `json:"speaker_name"`
	SpeakerEmail   string   `json:"speaker_email" binding:"omitempty,email"`
	SpeakerFee     float64  `json:"speaker_fee" binding:"gte=0"`
	ProgramType    string   `json:"program_type" binding:"omitempty,oneof=keynote panel_discussion workshop fireside_chat"`
	TravelRequired *bool    `json:"travel_required"`
	FlightRequired *bool    `json:"flight_required"`
	HotelRequired  *bool    `json:"hotel_required"`
	TravelStipend  *float64 `json:"travel_stipend" binding:"omitempty,gte=0"`
	Notes          string   `json:"notes"`
}

func (r CreateFirmOfferRequest) ToInput() usecase.CreateFirmOfferInput {
	return usecase.CreateFirmOfferInput{
		DealID:        strings.TrimSpace(r.DealID),
		ProposalID:    strings.TrimSpace(r.ProposalID),
		HoldExpiresAt: r.HoldExpiresAt,
		Manual: usecase.ManualFields{
			ClientName:     r.ClientName,
			ClientEmail:    r.ClientEmail,
			ClientPhone:    r.ClientPhone,
			CompanyName:    r.CompanyName,
			EventName:      r.EventName,
			EventDate:      r.EventDate,
			EventLocation:  r.EventLocation,
			EventType:      r.EventType,
			AttendeeCount:  r.AttendeeCount,
			SpeakerName:    r.SpeakerName,
			SpeakerEmail:   r.SpeakerEmail,
			SpeakerFee:     r.SpeakerFee,
			ProgramType:    entities.ProgramType(r.ProgramType),
			TravelRequired: r.TravelRequired,
			FlightRequired: r.FlightRequired,
			HotelRequired:  r.HotelRequired,
			TravelStipend:  r.TravelStipend,
			Notes:          r.Notes,
		},
	}
}

// UpdateFirmOfferRequest replaces every sub-document of the offer.
type UpdateFirmOfferRequest struct {
	entities.FirmOfferDocuments
}

func (r UpdateFirmOfferRequest) Documents() entities.FirmOfferDocuments {
	return r.FirmOfferDocuments
}

type SendToSpeakerRequest struct {
	SpeakerEmail string `json:"speaker_email" binding:"omitempty,email"`
}

// SpeakerDecisionRequest carries the speaker's answer. confirmed is a pointer
// so that an explicit false is told apart from a missing field.
type SpeakerDecisionRequest struct {
	Confirmed *bool  `json:"confirmed" binding:"required"`
	Notes     string `json:"notes" binding:"max=4000"`
}

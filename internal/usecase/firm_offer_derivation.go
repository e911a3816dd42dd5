package usecase

import (
	"fmt"
	"math"
	"strings"

	"speaker_bureau/internal/domain/entities"
)

// SpeakerShare is the part of a deal's value paid to the speaker. The bureau
// keeps the remaining 20% as commission.
const SpeakerShare = 0.8

// FirmOfferSource selects where a new firm offer is prefilled from.
type FirmOfferSource string

const (
	FirmOfferSourceDeal     FirmOfferSource = "deal"
	FirmOfferSourceProposal FirmOfferSource = "proposal"
	FirmOfferSourceManual   FirmOfferSource = "manual"
)

// ManualFields are the values typed into the creation form. Zero values (and
// nil flags) mean "not typed" and leave the derived value in place.
type ManualFields struct {
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	CompanyName    string
	EventName      string
	EventDate      string
	EventLocation  string
	EventType      string
	AttendeeCount  int
	SpeakerName    string
	SpeakerEmail   string
	SpeakerFee     float64
	ProgramType    entities.ProgramType
	TravelRequired *bool
	FlightRequired *bool
	HotelRequired  *bool
	TravelStipend  *float64
	Notes          string
}

// SelectSource resolves the single active source. Supplying both a deal and a
// proposal is rejected.
func SelectSource(dealID, proposalID string) (FirmOfferSource, error) {
	dealID = strings.TrimSpace(dealID)
	proposalID = strings.TrimSpace(proposalID)
	switch {
	case dealID != "" && proposalID != "":
		return "", ErrConflictingSources
	case dealID != "":
		return FirmOfferSourceDeal, nil
	case proposalID != "":
		return FirmOfferSourceProposal, nil
	default:
		return FirmOfferSourceManual, nil
	}
}

// SpeakerFeeFromDealValue applies the fixed commission, rounded to cents.
func SpeakerFeeFromDealValue(dealValue float64) float64 {
	return math.Round(dealValue*SpeakerShare*100) / 100
}

var programTypeKeywords = []struct {
	keyword string
	program entities.ProgramType
}{
	{"panel", entities.ProgramTypePanelDiscussion},
	{"workshop", entities.ProgramTypeWorkshop},
	{"fireside", entities.ProgramTypeFiresideChat},
	{"keynote", entities.ProgramTypeKeynote},
}

// InferProgramType matches the event type case-insensitively against known
// program keywords and defaults to keynote.
func InferProgramType(eventType string) entities.ProgramType {
	t := strings.ToLower(eventType)
	for _, k := range programTypeKeywords {
		if strings.Contains(t, k.keyword) {
			return k.program
		}
	}
	return entities.ProgramTypeKeynote
}

func DeriveFromDeal(d entities.Deal) entities.FirmOfferDocuments {
	var docs entities.FirmOfferDocuments
	docs.EventOverview = entities.EventOverview{
		ClientName:    d.ClientName,
		ClientEmail:   d.ClientEmail,
		ClientPhone:   d.ClientPhone,
		CompanyName:   d.Company,
		EventName:     d.EventTitle,
		EventDate:     d.EventDate,
		EventLocation: d.EventLocation,
		EventType:     d.EventType,
		AttendeeCount: d.AttendeeCount,
		BillingContact: entities.Contact{
			Name:  d.ClientName,
			Email: d.ClientEmail,
			Phone: d.ClientPhone,
		},
	}
	docs.SpeakerProgram = entities.SpeakerProgram{
		RequestedSpeaker: d.SpeakerRequested,
		ProgramType:      InferProgramType(d.EventType),
	}
	docs.TravelAccommodation = entities.TravelAccommodation{
		TravelRequired: d.TravelRequired,
		FlightRequired: d.FlightRequired,
		HotelRequired:  d.HotelRequired,
		TravelStipend:  d.TravelStipend,
	}
	docs.FinancialDetails.SpeakerFee = SpeakerFeeFromDealValue(d.DealValue)
	return docs.Normalize()
}

func DeriveFromProposal(p entities.Proposal) entities.FirmOfferDocuments {
	var docs entities.FirmOfferDocuments
	docs.EventOverview = entities.EventOverview{
		ClientName:    p.ClientName,
		ClientEmail:   p.ClientEmail,
		CompanyName:   p.ClientCompany,
		EventName:     p.EventTitle,
		EventDate:     p.EventDate,
		EventLocation: p.EventLocation,
		EventType:     p.EventType,
		AttendeeCount: p.AttendeeCount,
		BillingContact: entities.Contact{
			Name:  p.ClientName,
			Email: p.ClientEmail,
		},
	}
	docs.SpeakerProgram.ProgramType = InferProgramType(p.EventType)

	fee := p.TotalInvestment
	if len(p.Speakers) > 0 {
		first := p.Speakers[0]
		docs.SpeakerProgram.RequestedSpeaker = first.Name
		if first.Fee > 0 {
			fee = first.Fee
		}
	}
	docs.FinancialDetails.SpeakerFee = fee
	return docs.Normalize()
}

// ApplyManualFields overlays what the user typed on top of the derived documents.
func ApplyManualFields(docs entities.FirmOfferDocuments, m ManualFields) entities.FirmOfferDocuments {
	ov := &docs.EventOverview
	setString(&ov.ClientName, m.ClientName)
	setString(&ov.ClientEmail, m.ClientEmail)
	setString(&ov.ClientPhone, m.ClientPhone)
	setString(&ov.CompanyName, m.CompanyName)
	setString(&ov.EventName, m.EventName)
	setString(&ov.EventDate, m.EventDate)
	setString(&ov.EventLocation, m.EventLocation)
	if strings.TrimSpace(m.EventType) != "" {
		ov.EventType = strings.TrimSpace(m.EventType)
		docs.SpeakerProgram.ProgramType = InferProgramType(ov.EventType)
	}
	if m.AttendeeCount > 0 {
		ov.AttendeeCount = m.AttendeeCount
	}
	if ov.BillingContact.Name == "" {
		ov.BillingContact.Name = ov.ClientName
	}
	if ov.BillingContact.Email == "" {
		ov.BillingContact.Email = ov.ClientEmail
	}

	sp := &docs.SpeakerProgram
	setString(&sp.RequestedSpeaker, m.SpeakerName)
	setString(&sp.SpeakerEmail, m.SpeakerEmail)
	if m.ProgramType.Valid() {
		sp.ProgramType = m.ProgramType
	}

	if m.SpeakerFee > 0 {
		docs.FinancialDetails.SpeakerFee = m.SpeakerFee
	}

	tr := &docs.TravelAccommodation
	setBool(&tr.TravelRequired, m.TravelRequired)
	setBool(&tr.FlightRequired, m.FlightRequired)
	setBool(&tr.HotelRequired, m.HotelRequired)
	if m.TravelStipend != nil {
		tr.TravelStipend = *m.TravelStipend
	}

	setString(&docs.AdditionalInfo.SpecialRequests, m.Notes)
	return docs.Normalize()
}

// ValidateRequired reports every mandatory field still missing.
func ValidateRequired(docs entities.FirmOfferDocuments) error {
	var missing []string
	if strings.TrimSpace(docs.EventOverview.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if strings.TrimSpace(docs.SpeakerProgram.RequestedSpeaker) == "" {
		missing = append(missing, "speaker_name")
	}
	if strings.TrimSpace(docs.EventOverview.EventName) == "" {
		missing = append(missing, "event_name")
	}
	if docs.FinancialDetails.SpeakerFee <= 0 {
		missing = append(missing, "speaker_fee")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
	}
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

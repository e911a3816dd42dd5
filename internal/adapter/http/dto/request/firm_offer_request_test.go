package request

import (
	"encoding/json"
	"testing"
	"time"

	"speaker_bureau/internal/domain/entities"
)

func TestCreateFirmOfferRequest_ToInput(t *testing.T) {
	hold := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	no := false
	stipend := 250.0
	r := CreateFirmOfferRequest{
		DealID:         " deal-1 ",
		ProposalID:     "   ",
		HoldExpiresAt:  &hold,
		ClientName:     "Ada Lovelace",
		EventName:      "Future of Computing",
		SpeakerFee:     16000,
		ProgramType:    "workshop",
		FlightRequired: &no,
		TravelStipend:  &stipend,
	}

	in := r.ToInput()
	if in.DealID != "deal-1" || in.ProposalID != "" {
		t.Fatalf("expected trimmed source ids, got %q / %q", in.DealID, in.ProposalID)
	}
	if in.HoldExpiresAt == nil || !in.HoldExpiresAt.Equal(hold) {
		t.Fatalf("unexpected hold %v", in.HoldExpiresAt)
	}
	if in.Manual.ClientName != "Ada Lovelace" || in.Manual.EventName != "Future of Computing" || in.Manual.SpeakerFee != 16000 {
		t.Fatalf("unexpected manual fields: %+v", in.Manual)
	}
	if in.Manual.ProgramType != entities.ProgramTypeWorkshop {
		t.Fatalf("expected workshop, got %q", in.Manual.ProgramType)
	}
	if in.Manual.FlightRequired == nil || *in.Manual.FlightRequired {
		t.Fatalf("explicit false must be kept")
	}
	if in.Manual.HotelRequired != nil || in.Manual.TravelRequired != nil {
		t.Fatalf("untyped flags must stay nil")
	}
	if in.Manual.TravelStipend == nil || *in.Manual.TravelStipend != 250 {
		t.Fatalf("unexpected stipend %v", in.Manual.TravelStipend)
	}
}

func TestUpdateFirmOfferRequest_Documents(t *testing.T) {
	var r UpdateFirmOfferRequest
	body := `{"event_overview":{"client_name":"Ada","billing_contact":{"email":"billing@client.test"}},"financial_details":{"speaker_fee":9000}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := r.Documents()
	if d.EventOverview.ClientName != "Ada" || d.EventOverview.BillingContact.Email != "billing@client.test" {
		t.Fatalf("unexpected overview: %+v", d.EventOverview)
	}
	if d.FinancialDetails.SpeakerFee != 9000 {
		t.Fatalf("unexpected fee %v", d.FinancialDetails.SpeakerFee)
	}
}

func TestSpeakerDecisionRequest_ConfirmedIsTriState(t *testing.T) {
	var missing, declined SpeakerDecisionRequest
	if err := json.Unmarshal([]byte(`{"notes":"hi"}`), &missing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"confirmed":false}`), &declined); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.Confirmed != nil {
		t.Fatalf("missing confirmed must stay nil")
	}
	if declined.Confirmed == nil || *declined.Confirmed {
		t.Fatalf("explicit decline must be kept")
	}
}

package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase"
)

var (
	responseNow   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	responseLinks = usecase.NewFirmOfferLinks("https://app.example.test/")
)

func responseOffer(status entities.FirmOfferStatus) entities.FirmOffer {
	o := entities.FirmOffer{
		ID:                 "fo-1",
		Status:             status,
		ClientAccessToken:  strings.Repeat("c", 64),
		SpeakerReviewToken: strings.Repeat("s", 64),
		CreatedAt:          responseNow.Add(-24 * time.Hour),
		HoldExpiresAt:      responseNow.Add(36 * time.Hour),
	}
	o.EventOverview.EventName = "Future of Computing"
	o.EventOverview.BillingContact.Email = "billing@client.test"
	o.FinancialDetails.SpeakerFee = 16000
	o.FinancialDetails.PONumber = "PO-77"
	return o
}

func TestFromFirmOfferWithLinks(t *testing.T) {
	r := FromFirmOfferWithLinks(responseOffer(entities.FirmOfferStatusSubmitted), responseNow, responseLinks)

	if r.ClientURL != "https://app.example.test/firm-offer/"+strings.Repeat("c", 64) {
		t.Fatalf("unexpected client url %q", r.ClientURL)
	}
	if r.SpeakerReviewURL != "https://app.example.test/speaker-review/"+strings.Repeat("s", 64) {
		t.Fatalf("unexpected speaker url %q", r.SpeakerReviewURL)
	}
	if r.ClientAccessToken != "" || r.SpeakerReviewToken != "" {
		t.Fatalf("tokens must not be set outside creation")
	}
	if r.DisplayStatus != "ready_for_review" || r.DisplayStatusLabel != "Ready for Review" {
		t.Fatalf("unexpected display status %q / %q", r.DisplayStatus, r.DisplayStatusLabel)
	}
	if r.Hold.DaysRemaining != 2 || r.Hold.Expired {
		t.Fatalf("unexpected hold %+v", r.Hold)
	}

	t.Run("missing speaker token has no review link", func(t *testing.T) {
		o := responseOffer(entities.FirmOfferStatusOutForDelivery)
		o.SpeakerReviewToken = ""
		if r := FromFirmOfferWithLinks(o, responseNow, responseLinks); r.SpeakerReviewURL != "" {
			t.Fatalf("expected no review url, got %q", r.SpeakerReviewURL)
		}
	})
}

func TestFromCreatedFirmOffer(t *testing.T) {
	r := FromCreatedFirmOffer(responseOffer(entities.FirmOfferStatusOutForDelivery), responseNow, responseLinks)
	if r.ClientAccessToken != strings.Repeat("c", 64) || r.SpeakerReviewToken != strings.Repeat("s", 64) {
		t.Fatalf("creation response must carry both tokens: %+v", r)
	}
	if r.ClientURL == "" || r.SpeakerReviewURL == "" {
		t.Fatalf("creation response must carry both links")
	}
}

func TestFromClientAccess_OmitsTokensAndLinks(t *testing.T) {
	r := FromClientAccess(usecase.ClientAccess{Offer: responseOffer(entities.FirmOfferStatusOutForDelivery), CanEdit: true}, responseNow)

	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, strings.Repeat("s", 64)) || strings.Contains(body, "speaker_review_url") {
		t.Fatalf("speaker credentials leaked to the client view: %s", body)
	}
	if !r.CanEdit || !strings.Contains(body, `"can_edit":true`) {
		t.Fatalf("expected editable view: %s", body)
	}
}

func TestFromSpeakerAccess(t *testing.T) {
	t.Run("awaiting decision", func(t *testing.T) {
		r := FromSpeakerAccess(usecase.SpeakerAccess{Offer: responseOffer(entities.FirmOfferStatusSentToSpeaker)}, responseNow)

		if !r.CanRespond || r.DisplayStatus != "awaiting_speaker" || r.SpeakerFee != 16000 {
			t.Fatalf("unexpected review: %+v", r)
		}
		raw, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		body := string(raw)
		if strings.Contains(body, "billing@client.test") || strings.Contains(body, "PO-77") || strings.Contains(body, strings.Repeat("c", 64)) {
			t.Fatalf("client-only data leaked: %s", body)
		}
	})

	t.Run("decided offer can not respond", func(t *testing.T) {
		o := responseOffer(entities.FirmOfferStatusSentToSpeaker)
		yes := true
		o.SpeakerConfirmed = &yes

		r := FromSpeakerAccess(usecase.SpeakerAccess{Offer: o}, responseNow)
		if r.CanRespond || r.DisplayStatus != "speaker_confirmed" {
			t.Fatalf("unexpected review: %+v", r)
		}
	})
}

func TestFromFirmOffers_EmptyIsNotNil(t *testing.T) {
	if out := FromFirmOffers(nil, responseNow, responseLinks); out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %#v", out)
	}
}

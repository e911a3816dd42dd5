package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"speaker_bureau/internal/adapter/http/handlers/mocks"
	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

var (
	handlerNow   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	handlerLinks = usecase.NewFirmOfferLinks("https://app.example.test")
)

func handlerOffer(status entities.FirmOfferStatus) entities.FirmOffer {
	o := entities.FirmOffer{
		ID:                 "fo-1",
		DealID:             "deal-1",
		Status:             status,
		ClientAccessToken:  strings.Repeat("c", 64),
		SpeakerReviewToken: strings.Repeat("s", 64),
		CreatedAt:          handlerNow.Add(-24 * time.Hour),
		UpdatedAt:          handlerNow.Add(-24 * time.Hour),
		HoldExpiresAt:      handlerNow.Add(13 * 24 * time.Hour),
	}
	o.EventOverview.ClientName = "Ada Lovelace"
	o.EventOverview.ClientEmail = "ada@client.test"
	o.EventOverview.EventName = "Future of Computing"
	o.SpeakerProgram.RequestedSpeaker = "Grace Hopper"
	o.FinancialDetails.SpeakerFee = 16000
	o.FirmOfferDocuments = o.FirmOfferDocuments.Normalize()
	return o
}

func newAdminRouter(t *testing.T) (*gin.Engine, *mocks.MockIFirmOfferUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFirmOfferUseCase(ctrl)
	h := NewFirmOfferHandler(uc, handlerLinks, zerolog.Nop())
	h.now = func() time.Time { return handlerNow }

	r := gin.New()
	r.POST("/v1/firm-offers", h.CreateFirmOffer)
	r.GET("/v1/firm-offers", h.ListFirmOffers)
	r.GET("/v1/firm-offers/:id", h.GetFirmOffer)
	r.PUT("/v1/firm-offers/:id", h.UpdateFirmOffer)
	r.POST("/v1/firm-offers/:id/submit", h.SubmitFirmOffer)
	r.POST("/v1/firm-offers/:id/send-to-speaker", h.SendToSpeaker)
	r.POST("/v1/firm-offers/:id/reset-hold", h.ResetHold)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestFirmOfferHandler_CreateFirmOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newAdminRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/firm-offers", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid email is rejected by binding", func(t *testing.T) {
		r, _ := newAdminRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/firm-offers", `{"client_email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("passes overrides to the usecase", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateFirmOfferInput) (entities.FirmOffer, error) {
				if in.DealID != "deal-1" || in.Manual.EventName != "Override" || in.Manual.FlightRequired == nil || *in.Manual.FlightRequired {
					t.Fatalf("unexpected input: %+v", in)
				}
				return handlerOffer(entities.FirmOfferStatusOutForDelivery), nil
			})

		w := doJSON(r, http.MethodPost, "/v1/firm-offers", `{"deal_id":" deal-1 ","event_name":"Override","flight_required":false}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["display_status"] != "out_for_delivery" || body["client_url"] != "https://app.example.test/firm-offer/"+strings.Repeat("c", 64) {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["client_access_token"] != strings.Repeat("c", 64) || body["speaker_review_token"] != strings.Repeat("s", 64) {
			t.Fatalf("creation response must carry both tokens: %v", body)
		}
		hold := body["hold"].(map[string]any)
		if hold["days_remaining"].(float64) != 13 || hold["expired"].(bool) {
			t.Fatalf("unexpected hold: %v", hold)
		}
	})

	t.Run("maps usecase errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrConflictingSources, http.StatusBadRequest},
			{fmt.Errorf("%w: client_name", usecase.ErrMissingRequiredField), http.StatusBadRequest},
			{usecase.ErrInvalidHoldExpiry, http.StatusBadRequest},
			{usecase.ErrDealNotFound, http.StatusNotFound},
			{usecase.ErrProposalNotFound, http.StatusNotFound},
			{errors.New("dynamodb down"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			r, uc := newAdminRouter(t)
			uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.FirmOffer{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/firm-offers", `{"proposal_id":"p-1"}`)
			if w.Code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
			if tc.code == http.StatusInternalServerError && strings.Contains(w.Body.String(), "dynamodb") {
				t.Fatalf("internal cause leaked: %s", w.Body.String())
			}
		}
	})
}

func TestFirmOfferHandler_ListFirmOffers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the filter", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.DisplayStatusAwaitingSpeaker).
			Return([]entities.FirmOffer{handlerOffer(entities.FirmOfferStatusSentToSpeaker)}, nil)

		w := doJSON(r, http.MethodGet, "/v1/firm-offers?status=awaiting_speaker", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		if body[0]["display_status_label"] != "Awaiting Speaker" {
			t.Fatalf("unexpected item: %v", body[0])
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.DisplayStatus("")).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/firm-offers", "")
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.DisplayStatus("bogus")).Return(nil, usecase.ErrInvalidStatusFilter)

		w := doJSON(r, http.MethodGet, "/v1/firm-offers?status=bogus", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestFirmOfferHandler_ByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get exposes links but not tokens", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "fo-1").Return(handlerOffer(entities.FirmOfferStatusOutForDelivery), nil)

		w := doJSON(r, http.MethodGet, "/v1/firm-offers/fo-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if _, ok := body["client_access_token"]; ok {
			t.Fatalf("token must only be returned on creation")
		}
		if body["speaker_review_url"] != handlerLinks.SpeakerReviewURL(strings.Repeat("s", 64)) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "fo-404").Return(entities.FirmOffer{}, usecase.ErrFirmOfferNotFound)

		w := doJSON(r, http.MethodGet, "/v1/firm-offers/fo-404", "")
		if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "FIRM_OFFER_NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update documents", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().UpdateDocuments(gomock.Any(), "fo-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, docs entities.FirmOfferDocuments) (entities.FirmOffer, error) {
				if docs.EventOverview.VenueName != "Main Hall" || docs.SpeakerProgram.ProgramType != entities.ProgramTypeWorkshop {
					t.Fatalf("unexpected documents: %+v", docs)
				}
				return handlerOffer(entities.FirmOfferStatusOutForDelivery), nil
			})

		w := doJSON(r, http.MethodPut, "/v1/firm-offers/fo-1",
			`{"event_overview":{"venue_name":"Main Hall"},"speaker_program":{"program_type":"workshop"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update after decision conflicts", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().UpdateDocuments(gomock.Any(), "fo-1", gomock.Any()).Return(entities.FirmOffer{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPut, "/v1/firm-offers/fo-1", `{}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("submit", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "fo-1").Return(handlerOffer(entities.FirmOfferStatusSubmitted), nil)

		w := doJSON(r, http.MethodPost, "/v1/firm-offers/fo-1/submit", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["display_status"] != "ready_for_review" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("send to speaker without body", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		sent := handlerOffer(entities.FirmOfferStatusSentToSpeaker)
		reviewURL := handlerLinks.SpeakerReviewURL(sent.SpeakerReviewToken)
		uc.EXPECT().SendToSpeaker(gomock.Any(), "fo-1", "").
			Return(usecase.SendToSpeakerResult{Offer: sent, SpeakerReviewURL: reviewURL}, nil)

		w := doJSON(r, http.MethodPost, "/v1/firm-offers/fo-1/send-to-speaker", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["speaker_review_url"] != reviewURL {
			t.Fatalf("missing review url: %s", w.Body.String())
		}
	})

	t.Run("send to speaker with recipient", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		uc.EXPECT().SendToSpeaker(gomock.Any(), "fo-1", "grace@speakers.test").
			Return(usecase.SendToSpeakerResult{Offer: handlerOffer(entities.FirmOfferStatusSentToSpeaker)}, nil)

		w := doJSON(r, http.MethodPost, "/v1/firm-offers/fo-1/send-to-speaker", `{"speaker_email":"grace@speakers.test"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("send to speaker with bad recipient", func(t *testing.T) {
		r, _ := newAdminRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/firm-offers/fo-1/send-to-speaker", `{"speaker_email":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reset hold", func(t *testing.T) {
		r, uc := newAdminRouter(t)
		o := handlerOffer(entities.FirmOfferStatusOutForDelivery)
		o.HoldExpiresAt = handlerNow.Add(entities.HoldPeriod)
		uc.EXPECT().ResetHold(gomock.Any(), "fo-1").Return(o, nil)

		w := doJSON(r, http.MethodPost, "/v1/firm-offers/fo-1/reset-hold", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		hold := decodeBody(t, w)["hold"].(map[string]any)
		if hold["days_remaining"].(float64) != 14 {
			t.Fatalf("unexpected hold: %v", hold)
		}
	})
}

func newPublicRouter(t *testing.T) (*gin.Engine, *mocks.MockIFirmOfferUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFirmOfferUseCase(ctrl)

	client := NewClientFirmOfferHandler(uc, zerolog.Nop())
	client.now = func() time.Time { return handlerNow }
	speaker := NewSpeakerReviewHandler(uc, zerolog.Nop())
	speaker.now = func() time.Time { return handlerNow }

	r := gin.New()
	r.GET("/v1/firm-offer/:token", client.GetFirmOffer)
	r.PUT("/v1/firm-offer/:token", client.UpdateFirmOffer)
	r.POST("/v1/firm-offer/:token/submit", client.SubmitFirmOffer)
	r.GET("/v1/speaker-review/:token", speaker.GetReview)
	r.POST("/v1/speaker-review/:token/decision", speaker.RecordDecision)
	return r, uc
}

func TestClientFirmOfferHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token := strings.Repeat("c", 64)

	t.Run("unknown token is a generic 404", func(t *testing.T) {
		r, uc := newPublicRouter(t)
		uc.EXPECT().GetForClient(gomock.Any(), "short").Return(usecase.ClientAccess{}, usecase.ErrTokenNotFound)

		w := doJSON(r, http.MethodGet, "/v1/firm-offer/short", "")
		if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("client view hides the speaker token", func(t *testing.T) {
		r, uc := newPublicRouter(t)
		o := handlerOffer(entities.FirmOfferStatusOutForDelivery)
		uc.EXPECT().GetForClient(gomock.Any(), token).Return(usecase.ClientAccess{Offer: o, CanEdit: true}, nil)

		w := doJSON(r, http.MethodGet, "/v1/firm-offer/"+token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), o.SpeakerReviewToken) {
			t.Fatalf("speaker token leaked to the client surface")
		}
		if decodeBody(t, w)["can_edit"] != true {
			t.Fatalf("expected editable view")
		}
	})

	t.Run("update outside the editable window", func(t *testing.T) {
		r, uc := newPublicRouter(t)
		uc.EXPECT().UpdateDocumentsByClient(gomock.Any(), token, gomock.Any()).Return(entities.FirmOffer{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPut, "/v1/firm-offer/"+token, `{"event_overview":{"client_name":"Ada"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("submit", func(t *testing.T) {
		r, uc := newPublicRouter(t)
		uc.EXPECT().SubmitByClient(gomock.Any(), token).Return(handlerOffer(entities.FirmOfferStatusSubmitted), nil)

		w := doJSON(r, http.MethodPost, "/v1/firm-offer/"+token+"/submit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "submitted" || body["can_edit"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSpeakerReviewHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token := strings.Repeat("s", 64)

	t.Run("review hides client billing fields", func(t *testing.T) {
		r, uc := newPublicRouter(t)
		o := handlerOffer(entities.FirmOfferStatusSentToSpeaker)
		o.EventOverview.BillingContact.Email = "billing@client.test"
		o.FinancialDetails.PONumber = "PO-77"
		uc.EXPECT().OpenSpeakerReview(gomock.Any(), token).Return(usecase.SpeakerAccess{Offer: o}, nil)

		w := doJSON(r, http.MethodGet, "/v1/speaker-review/"+token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		raw := w.Body.String()
		if strings.Contains(raw, "billing@client.test") || strings.Contains(raw, "PO-77") || strings.Contains(raw, o.ClientAccessToken) {
			t.Fatalf("client-only data leaked: %s", raw)
		}
		body := decodeBody(t, w)
		if body["can_respond"] != true || body["speaker_fee"].(float64) != 16000 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("decision requires confirmed", func(t *testing.T) {
		r, _ := newPublicRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/speaker-review/"+token+"/decision", `{"notes":"hi"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("explicit decline", func(t *testing.T) {
		r, uc := newPublicRouter(t)
		o := handlerOffer(entities.FirmOfferStatusSentToSpeaker)
		no := false
		o.SpeakerConfirmed = &no
		uc.EXPECT().RecordSpeakerDecision(gomock.Any(), token, false, "Conflict").Return(o, nil)

		w := doJSON(r, http.MethodPost, "/v1/speaker-review/"+token+"/decision", `{"confirmed":false,"notes":"Conflict"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["display_status"] != "speaker_declined" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("replay conflicts", func(t *testing.T) {
		r, uc := newPublicRouter(t)
		uc.EXPECT().RecordSpeakerDecision(gomock.Any(), token, true, "").Return(entities.FirmOffer{}, usecase.ErrAlreadyDecided)

		w := doJSON(r, http.MethodPost, "/v1/speaker-review/"+token+"/decision", `{"confirmed":true}`)
		if w.Code != http.StatusConflict || decodeBody(t, w)["code"] != "ALREADY_DECIDED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

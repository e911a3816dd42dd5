package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"speaker_bureau/internal/adapter/http/handlers/mocks"
	"speaker_bureau/internal/infrastructure/config"
	"speaker_bureau/internal/infrastructure/notifications"
	"speaker_bureau/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFirmOfferUseCase(ctrl)
	router := NewRouter(zerolog.Nop(), uc, usecase.NewFirmOfferLinks("http://localhost:3000"))

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected a request id header")
		}
	})

	t.Run("every surface is registered", func(t *testing.T) {
		routes := []string{
			"POST /v1/firm-offers",
			"GET /v1/firm-offers",
			"GET /v1/firm-offers/:id",
			"PUT /v1/firm-offers/:id",
			"POST /v1/firm-offers/:id/submit",
			"POST /v1/firm-offers/:id/send-to-speaker",
			"POST /v1/firm-offers/:id/reset-hold",
			"GET /v1/firm-offer/:token",
			"PUT /v1/firm-offer/:token",
			"POST /v1/firm-offer/:token/submit",
			"GET /v1/speaker-review/:token",
			"POST /v1/speaker-review/:token/decision",
		}
		want := make(map[string]bool, len(routes))
		for _, r := range routes {
			want[r] = false
		}
		for _, r := range router.Routes() {
			key := r.Method + " " + r.Path
			if _, ok := want[key]; ok {
				want[key] = true
			}
		}
		for route, seen := range want {
			if !seen {
				t.Fatalf("route %s not registered", route)
			}
		}
	})
}

func TestConnectNotifier_FallsBackToLog(t *testing.T) {
	n, closeFn := connectNotifier(config.Config{}, zerolog.Nop())
	defer closeFn()
	if _, ok := n.(*notifications.LogDispatcher); !ok {
		t.Fatalf("expected log dispatcher, got %T", n)
	}
}

package routes

import (
	"speaker_bureau/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFirmOffers    = "/firm-offers"
	PathClientOffer   = "/firm-offer"
	PathSpeakerReview = "/speaker-review"
)

func addFirmOfferRoutes(rg *gin.RouterGroup, h *handlers.FirmOfferHandler) {
	offers := rg.Group(PathFirmOffers)
	{
		offers.POST("", h.CreateFirmOffer)
		offers.GET("", h.ListFirmOffers)
		offers.GET("/:id", h.GetFirmOffer)
		offers.PUT("/:id", h.UpdateFirmOffer)
		offers.POST("/:id/submit", h.SubmitFirmOffer)
		offers.POST("/:id/send-to-speaker", h.SendToSpeaker)
		offers.POST("/:id/reset-hold", h.ResetHold)
	}
}

// Public surfaces. The token in the path is the only credential.
func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientFirmOfferHandler) {
	client := rg.Group(PathClientOffer)
	{
		client.GET("/:token", h.GetFirmOffer)
		client.PUT("/:token", h.UpdateFirmOffer)
		client.POST("/:token/submit", h.SubmitFirmOffer)
	}
}

func addSpeakerRoutes(rg *gin.RouterGroup, h *handlers.SpeakerReviewHandler) {
	speaker := rg.Group(PathSpeakerReview)
	{
		speaker.GET("/:token", h.GetReview)
		speaker.POST("/:token/decision", h.RecordDecision)
	}
}

package handlers

import (
	"net/http"
	"time"

	request "speaker_bureau/internal/adapter/http/dto/request"
	response "speaker_bureau/internal/adapter/http/dto/response"
	"speaker_bureau/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SpeakerReviewHandler serves the speaker surface through the review token.
type SpeakerReviewHandler struct {
	usecase usecase.IFirmOfferUseCase
	log     zerolog.Logger
	now     func() time.Time
}

func NewSpeakerReviewHandler(uc usecase.IFirmOfferUseCase, log zerolog.Logger) *SpeakerReviewHandler {
	return &SpeakerReviewHandler{
		usecase: uc,
		log:     log.With().Str("component", "speaker_review_handler").Logger(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetReview godoc
// @Summary      Open the speaker review
// @Description  Returns the speaker-facing fields and records the first view.
// @Tags         speaker
// @Produce      json
// @Param        token  path      string  true  "Speaker review token"
// @Success      200    {object}  response.SpeakerReviewResponse
// @Failure      404    {object}  pkg.HTTPError
// @Router       /speaker-review/{token} [get]
func (h *SpeakerReviewHandler) GetReview(c *gin.Context) {
	access, err := h.usecase.OpenSpeakerReview(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSpeakerAccess(access, h.now()))
}

// RecordDecision godoc
// @Summary      Confirm or decline the engagement
// @Tags         speaker
// @Accept       json
// @Produce      json
// @Param        token    path      string                          true  "Speaker review token"
// @Param        payload  body      request.SpeakerDecisionRequest  true  "Decision"
// @Success      200      {object}  response.SpeakerDecisionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /speaker-review/{token}/decision [post]
func (h *SpeakerReviewHandler) RecordDecision(c *gin.Context) {
	var payload request.SpeakerDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.RecordSpeakerDecision(c.Request.Context(), c.Param("token"), *payload.Confirmed, payload.Notes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSpeakerDecision(offer, h.now()))
}

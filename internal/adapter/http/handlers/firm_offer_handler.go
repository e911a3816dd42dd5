package handlers

import (
	"net/http"
	"time"

	request "speaker_bureau/internal/adapter/http/dto/request"
	response "speaker_bureau/internal/adapter/http/dto/response"
	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FirmOfferHandler serves the staff surface, addressing offers by id.
type FirmOfferHandler struct {
	usecase usecase.IFirmOfferUseCase
	links   usecase.FirmOfferLinks
	log     zerolog.Logger
	now     func() time.Time
}

func NewFirmOfferHandler(uc usecase.IFirmOfferUseCase, links usecase.FirmOfferLinks, log zerolog.Logger) *FirmOfferHandler {
	return &FirmOfferHandler{
		usecase: uc,
		links:   links,
		log:     log.With().Str("component", "firm_offer_handler").Logger(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateFirmOffer godoc
// @Summary      Create a firm offer
// @Description  Derives a firm offer from a deal, a proposal or manual input. Manual fields override derived ones. The response carries both access tokens.
// @Tags         firm-offers
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateFirmOfferRequest  true  "Creation form"
// @Success      201      {object}  response.FirmOfferResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /firm-offers [post]
func (h *FirmOfferHandler) CreateFirmOffer(c *gin.Context) {
	var payload request.CreateFirmOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFirmOfferPayload.HTTPStatus, errInvalidFirmOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedFirmOffer(offer, h.now(), h.links))
}

// ListFirmOffers godoc
// @Summary      List firm offers
// @Tags         firm-offers
// @Produce      json
// @Param        status  query     string  false  "Display status filter"
// @Success      200     {array}   response.FirmOfferResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /firm-offers [get]
func (h *FirmOfferHandler) ListFirmOffers(c *gin.Context) {
	status := entities.DisplayStatus(c.Query("status"))

	offers, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFirmOffers(offers, h.now(), h.links))
}

// GetFirmOffer godoc
// @Summary      Get a firm offer
// @Tags         firm-offers
// @Produce      json
// @Param        id   path      string  true  "Firm offer id"
// @Success      200  {object}  response.FirmOfferResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /firm-offers/{id} [get]
func (h *FirmOfferHandler) GetFirmOffer(c *gin.Context) {
	offer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFirmOfferWithLinks(offer, h.now(), h.links))
}

// UpdateFirmOffer godoc
// @Summary      Replace the firm offer documents
// @Tags         firm-offers
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Firm offer id"
// @Param        payload  body      request.UpdateFirmOfferRequest  true  "Documents"
// @Success      200      {object}  response.FirmOfferResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /firm-offers/{id} [put]
func (h *FirmOfferHandler) UpdateFirmOffer(c *gin.Context) {
	var payload request.UpdateFirmOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFirmOfferPayload.HTTPStatus, errInvalidFirmOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.UpdateDocuments(c.Request.Context(), c.Param("id"), payload.Documents())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFirmOfferWithLinks(offer, h.now(), h.links))
}

// SubmitFirmOffer godoc
// @Summary      Submit a firm offer for review
// @Tags         firm-offers
// @Produce      json
// @Param        id   path      string  true  "Firm offer id"
// @Success      200  {object}  response.FirmOfferResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /firm-offers/{id}/submit [post]
func (h *FirmOfferHandler) SubmitFirmOffer(c *gin.Context) {
	offer, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFirmOfferWithLinks(offer, h.now(), h.links))
}

// SendToSpeaker godoc
// @Summary      Send the firm offer to the speaker
// @Description  Moves the offer to sent_to_speaker and returns the speaker review link.
// @Tags         firm-offers
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true   "Firm offer id"
// @Param        payload  body      request.SendToSpeakerRequest  false  "Recipient override"
// @Success      200      {object}  response.FirmOfferResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /firm-offers/{id}/send-to-speaker [post]
func (h *FirmOfferHandler) SendToSpeaker(c *gin.Context) {
	var payload request.SendToSpeakerRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidFirmOfferPayload.HTTPStatus, errInvalidFirmOfferPayload.ToHTTPError())
			return
		}
	}

	res, err := h.usecase.SendToSpeaker(c.Request.Context(), c.Param("id"), payload.SpeakerEmail)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	body := response.FromFirmOfferWithLinks(res.Offer, h.now(), h.links)
	body.SpeakerReviewURL = res.SpeakerReviewURL
	c.JSON(http.StatusOK, body)
}

// ResetHold godoc
// @Summary      Restart the hold window
// @Tags         firm-offers
// @Produce      json
// @Param        id   path      string  true  "Firm offer id"
// @Success      200  {object}  response.FirmOfferResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /firm-offers/{id}/reset-hold [post]
func (h *FirmOfferHandler) ResetHold(c *gin.Context) {
	offer, err := h.usecase.ResetHold(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFirmOfferWithLinks(offer, h.now(), h.links))
}

func respondError(c *gin.Context, log zerolog.Logger, err error) {
	appErr := mapFirmOfferError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

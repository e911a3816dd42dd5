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

// ClientFirmOfferHandler serves the client surface. The only credential is
// the client access token in the path.
type ClientFirmOfferHandler struct {
	usecase usecase.IFirmOfferUseCase
	log     zerolog.Logger
	now     func() time.Time
}

func NewClientFirmOfferHandler(uc usecase.IFirmOfferUseCase, log zerolog.Logger) *ClientFirmOfferHandler {
	return &ClientFirmOfferHandler{
		usecase: uc,
		log:     log.With().Str("component", "client_firm_offer_handler").Logger(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetFirmOffer godoc
// @Summary      Open a firm offer with the client link
// @Tags         client
// @Produce      json
// @Param        token  path      string  true  "Client access token"
// @Success      200    {object}  response.ClientFirmOfferResponse
// @Failure      404    {object}  pkg.HTTPError
// @Router       /firm-offer/{token} [get]
func (h *ClientFirmOfferHandler) GetFirmOffer(c *gin.Context) {
	access, err := h.usecase.GetForClient(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromClientAccess(access, h.now()))
}

// UpdateFirmOffer godoc
// @Summary      Save the client's edits
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        token    path      string                          true  "Client access token"
// @Param        payload  body      request.UpdateFirmOfferRequest  true  "Documents"
// @Success      200      {object}  response.ClientFirmOfferResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /firm-offer/{token} [put]
func (h *ClientFirmOfferHandler) UpdateFirmOffer(c *gin.Context) {
	var payload request.UpdateFirmOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFirmOfferPayload.HTTPStatus, errInvalidFirmOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.UpdateDocumentsByClient(c.Request.Context(), c.Param("token"), payload.Documents())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromClientAccess(usecase.ClientAccess{Offer: offer, CanEdit: offer.ClientCanEdit()}, h.now()))
}

// SubmitFirmOffer godoc
// @Summary      Submit the firm offer back to the bureau
// @Tags         client
// @Produce      json
// @Param        token  path      string  true  "Client access token"
// @Success      200    {object}  response.ClientFirmOfferResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /firm-offer/{token}/submit [post]
func (h *ClientFirmOfferHandler) SubmitFirmOffer(c *gin.Context) {
	offer, err := h.usecase.SubmitByClient(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.FromClientAccess(usecase.ClientAccess{Offer: offer, CanEdit: offer.ClientCanEdit()}, h.now()))
}

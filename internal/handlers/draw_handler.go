package handlers

import (
	"errors"
	"net/http"

	"github.com/ArowuTest/fakelotto-backend/internal/middleware"
	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/ArowuTest/fakelotto-backend/internal/prize"
	"github.com/ArowuTest/fakelotto-backend/internal/services"
	"github.com/ArowuTest/fakelotto-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	ticketService services.TicketService
	shareService  services.ShareService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(ticketService services.TicketService, shareService services.ShareService) *DrawHandler {
	return &DrawHandler{
		ticketService: ticketService,
		shareService:  shareService,
	}
}

// DrawResponse is a synthesized draw with everything needed to show and share it
type DrawResponse struct {
	*models.DrawBundle
	View       models.ResultView `json:"view"`
	Query      string            `json:"query"`
	ShareToken string            `json:"share_token,omitempty"`
}

// SynthesizeDraw handles POST /draws/synthesize
func (h *DrawHandler) SynthesizeDraw(c *gin.Context) {
	var request models.SynthesisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bundle, err := h.ticketService.SynthesizeDraw(c.Request.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoUsableLines):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid ticket QR payload: no usable lines"})
		case errors.Is(err, prize.ErrLineIndexOutOfRange),
			errors.Is(err, prize.ErrInvalidTier),
			errors.Is(err, prize.ErrNumberOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to synthesize draw: " + err.Error()})
		}
		return
	}

	token, err := h.shareService.Sign(bundle)
	if err != nil {
		// respond without a share link
		slog.Error("Failed to sign share token", "error", err, "round", bundle.Round)
		token = ""
	}

	response, err := newDrawResponse(bundle, token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare draw result: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetSharedDraw handles GET /draws/shared/:token. The token has been verified
// by ShareTokenMiddleware.
func (h *DrawHandler) GetSharedDraw(c *gin.Context) {
	value, ok := c.Get(middleware.DrawBundleKey)
	bundle, _ := value.(*models.DrawBundle)
	if !ok || bundle == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Share token is required"})
		return
	}

	response, err := newDrawResponse(bundle, c.GetString(middleware.ShareTokenKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare draw result: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetDrawView handles GET /draws/view?round=&winning=&bonus=&lines=
func (h *DrawHandler) GetDrawView(c *gin.Context) {
	rq := utils.DecodeResultQuery(c.Request.URL.Query())
	c.JSON(http.StatusOK, utils.BuildResultView(rq.Round, "", "", rq.Winning, rq.Bonus, rq.Lines))
}

func newDrawResponse(bundle *models.DrawBundle, token string) (*DrawResponse, error) {
	query, err := utils.EncodeResultQuery(bundle.Round, bundle.Result)
	if err != nil {
		return nil, err
	}

	return &DrawResponse{
		DrawBundle: bundle,
		View:       viewOf(bundle),
		Query:      query.Encode(),
		ShareToken: token,
	}, nil
}

func viewOf(bundle *models.DrawBundle) models.ResultView {
	r := bundle.Result
	return utils.BuildResultView(bundle.Round, bundle.DrawDate, bundle.TotalPrizeDisplay, r.WinningNumbers, r.BonusNumber, r.Lines)
}

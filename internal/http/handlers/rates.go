package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/andriiko/pocketbank/internal/config"
	"github.com/andriiko/pocketbank/internal/rates"
	"github.com/gin-gonic/gin"
)

type RatesProvider interface {
	Get(ctx context.Context) ([]rates.Rate, error)
}

type RatesHandler struct {
	rates RatesProvider
}

func NewRatesHandler(provider RatesProvider) *RatesHandler {
	return &RatesHandler{rates: provider}
}

func (h *RatesHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(10 * time.Second)

	defer cancel()

	items, err := h.rates.Get(cctx)

	if err != nil {
		RespondServiceUnavailable(ctx, "Exchange rates are temporarily unavailable")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

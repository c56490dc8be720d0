// Package handler はledgerフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/ledger/domain"
	"nikkei_backend/internal/feature/ledger/domain/entity"
	"nikkei_backend/internal/feature/ledger/transport/http/dto"
)

// LedgerUsecase は台帳表示のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LedgerUsecase interface {
	GetPortfolio(ctx context.Context) (entity.Portfolio, error)
	GetTrades(ctx context.Context, limit int) ([]entity.Trade, error)
	GetEquity(ctx context.Context) ([]entity.EquityPoint, error)
}

// LedgerHandler はペーパートレード台帳のHTTPリクエストを処理します。
type LedgerHandler struct {
	uc LedgerUsecase
}

// NewLedgerHandler は指定されたusecaseでLedgerHandlerの新しいインスタンスを生成します。
func NewLedgerHandler(uc LedgerUsecase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// GetPortfolioHandler はポートフォリオの概況を返します。
//
// エンドポイント例:
// GET /api/ledger
func (h *LedgerHandler) GetPortfolioHandler(c *gin.Context) {
	p, err := h.uc.GetPortfolio(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromPortfolio(p))
}

// GetTradesHandler は直近のトレードを新しい順で返します。
//
// エンドポイント例:
// GET /api/ledger/trades?limit=20
func (h *LedgerHandler) GetTradesHandler(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	trades, err := h.uc.GetTrades(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromTrades(trades))
}

// GetEquityHandler は日次評価額の履歴を古い順で返します。
//
// エンドポイント例:
// GET /api/ledger/equity
func (h *LedgerHandler) GetEquityHandler(c *gin.Context) {
	points, err := h.uc.GetEquity(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEquity(points))
}

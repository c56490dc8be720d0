// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/quote/adapters/yahoojp"
	"nikkei_backend/internal/feature/quote/domain/entity"
	"nikkei_backend/internal/feature/quote/transport/http/dto"
	"nikkei_backend/internal/feature/quote/usecase"
	"nikkei_backend/internal/shared/upstream"
)

// QuoteUsecase は現在値取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetQuote(ctx context.Context, code string) (entity.Quote, error)
}

// QuoteHandler はザラ場現在値のHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuoteHandler は銘柄コードを受け取り、現在値をJSONで返します。
//
// エンドポイント例:
// GET /api/quote/:code
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	code := c.Param("code")

	q, err := h.uc.GetQuote(c.Request.Context(), code)
	if err != nil {
		c.JSON(statusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(q))
}

// statusForError はドメインエラーをHTTPステータスへ対応付けます。
// ページからどのパターンでも価格が取れない場合も上流障害として扱います。
func statusForError(err error) int {
	var ue *upstream.Error
	switch {
	case errors.Is(err, usecase.ErrInvalidCode):
		return http.StatusBadRequest
	case errors.Is(err, upstream.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &ue), errors.Is(err, yahoojp.ErrNoPrice):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/candles/domain/entity"
	"nikkei_backend/internal/feature/candles/transport/http/dto"
	"nikkei_backend/internal/feature/candles/usecase"
	"nikkei_backend/internal/shared/upstream"
)

// SeriesUsecase はロウソク足シリーズ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SeriesUsecase interface {
	GetSeries(ctx context.Context, code string) (entity.Series, error)
}

// SeriesHandler はロウソク足データのHTTPリクエストを処理します。
type SeriesHandler struct {
	uc SeriesUsecase
}

// NewSeriesHandler は指定されたusecaseでSeriesHandlerの新しいインスタンスを生成します。
func NewSeriesHandler(uc SeriesUsecase) *SeriesHandler {
	return &SeriesHandler{uc: uc}
}

// GetSeriesHandler は銘柄コードを受け取り、日足シリーズをJSONで返します。
//
// エンドポイント例:
// GET /api/candles/:code
func (h *SeriesHandler) GetSeriesHandler(c *gin.Context) {
	code := c.Param("code")

	series, err := h.uc.GetSeries(c.Request.Context(), code)
	if err != nil {
		c.JSON(statusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(series))
}

// statusForError はドメインエラーをHTTPステータスへ対応付けます。
func statusForError(err error) int {
	var ue *upstream.Error
	switch {
	case errors.Is(err, usecase.ErrInvalidCode):
		return http.StatusBadRequest
	case errors.Is(err, upstream.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &ue):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

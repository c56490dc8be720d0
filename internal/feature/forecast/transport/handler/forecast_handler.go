// Package handler はforecastフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/forecast/domain/entity"
	"nikkei_backend/internal/feature/forecast/transport/http/dto"
	"nikkei_backend/internal/feature/forecast/usecase"
	"nikkei_backend/internal/shared/upstream"
)

// ForecastUsecase は予測取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ForecastUsecase interface {
	GetForecast(ctx context.Context, code string) (entity.Forecast, error)
}

// ForecastHandler は予測のHTTPリクエストを処理します。
type ForecastHandler struct {
	uc ForecastUsecase
}

// NewForecastHandler は指定されたusecaseでForecastHandlerの新しいインスタンスを生成します。
func NewForecastHandler(uc ForecastUsecase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// GetForecastHandler は銘柄コードを受け取り、線形トレンド予測をJSONで返します。
// 履歴不足では空のpointsを伴う200を返します。
//
// エンドポイント例:
// GET /api/forecast/:code
func (h *ForecastHandler) GetForecastHandler(c *gin.Context) {
	code := c.Param("code")

	fc, err := h.uc.GetForecast(c.Request.Context(), code)
	if err != nil {
		c.JSON(statusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(fc))
}

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

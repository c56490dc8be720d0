// Package handler はsettingsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/settings/domain/entity"
	"nikkei_backend/internal/feature/settings/transport/http/dto"
	"nikkei_backend/internal/feature/settings/usecase"
)

// SettingsUsecase は設定操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SettingsUsecase interface {
	Get(ctx context.Context) (entity.Settings, error)
	Update(ctx context.Context, s entity.Settings) (entity.Settings, error)
}

// SettingsHandler はダッシュボード設定のHTTPリクエストを処理します。
type SettingsHandler struct {
	uc SettingsUsecase
}

// NewSettingsHandler は指定されたusecaseでSettingsHandlerの新しいインスタンスを生成します。
func NewSettingsHandler(uc SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetSettingsHandler は現在の設定を返します。
//
// エンドポイント例:
// GET /api/settings
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	s, err := h.uc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(s))
}

// UpdateSettingsHandler は設定を検証のうえ上書きします。
//
// エンドポイント例:
// PUT /api/settings
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	s, err := h.uc.Update(c.Request.Context(), req.ToEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSettings) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(s))
}

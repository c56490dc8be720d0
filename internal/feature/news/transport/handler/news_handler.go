// Package handler provides the news feature's HTTP handlers.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/news/domain/entity"
	"nikkei_backend/internal/feature/news/transport/http/dto"
	"nikkei_backend/internal/feature/news/usecase"
	"nikkei_backend/internal/shared/upstream"
)

// NewsUsecase is defined on the consumer side, following Go convention.
type NewsUsecase interface {
	GetNews(ctx context.Context, code string) ([]entity.Item, error)
}

// NewsHandler serves the headline lookup endpoint.
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler returns a handler over the given usecase.
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// GetNewsHandler returns recent headlines for a stock code.
//
// GET /api/news/:code
func (h *NewsHandler) GetNewsHandler(c *gin.Context) {
	code := c.Param("code")

	items, err := h.uc.GetNews(c.Request.Context(), code)
	if err != nil {
		c.JSON(statusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntities(code, items))
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

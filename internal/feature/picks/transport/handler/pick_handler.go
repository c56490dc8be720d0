// Package handler provides the picks feature's HTTP handlers.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/picks/domain"
	"nikkei_backend/internal/feature/picks/domain/entity"
	"nikkei_backend/internal/feature/picks/transport/http/dto"
	"nikkei_backend/internal/feature/picks/usecase"
)

// PicksUsecase is defined on the consumer side, following Go convention.
type PicksUsecase interface {
	GetPicks(ctx context.Context, asof string) (string, []entity.Pick, error)
}

// PickHandler serves the ranked-candidate endpoints.
type PickHandler struct {
	uc PicksUsecase
}

// NewPickHandler returns a handler over the given usecase.
func NewPickHandler(uc PicksUsecase) *PickHandler {
	return &PickHandler{uc: uc}
}

// GetLatestHandler returns the picks for the newest report.
//
// GET /api/picks
func (h *PickHandler) GetLatestHandler(c *gin.Context) {
	h.respond(c, usecase.Latest)
}

// GetPicksHandler returns the picks for a concrete date or "latest".
//
// GET /api/picks/:asof
func (h *PickHandler) GetPicksHandler(c *gin.Context) {
	h.respond(c, c.Param("asof"))
}

func (h *PickHandler) respond(c *gin.Context, asof string) {
	date, picks, err := h.uc.GetPicks(c.Request.Context(), asof)
	if err != nil {
		c.JSON(statusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(date, picks))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidAsOf):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPicksNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Package handler はreportsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/reports/domain"
	"nikkei_backend/internal/feature/reports/usecase"
)

// ReportsUsecase はレポートカタログ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ReportsUsecase interface {
	ListDates(ctx context.Context) []string
	LatestDate(ctx context.Context) (string, bool)
	GetHTML(ctx context.Context, asof string) (string, []byte, error)
	GetMarkdown(ctx context.Context, asof string) (string, []byte, error)
}

// ReportHandler はレポートのHTTPリクエストを処理します。
type ReportHandler struct {
	uc ReportsUsecase
}

// NewReportHandler は指定されたusecaseでReportHandlerの新しいインスタンスを生成します。
func NewReportHandler(uc ReportsUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Index はダッシュボードの入口ページを描画します。
//
// エンドポイント例:
// GET /
func (h *ReportHandler) Index(c *gin.Context) {
	dates := h.uc.ListDates(c.Request.Context())
	latest := ""
	if len(dates) > 0 {
		latest = dates[0]
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Latest": latest,
		"Dates":  dates,
	})
}

// ListDatesHandler は利用可能なレポート日付を新しい順のJSON配列で返します。
//
// エンドポイント例:
// GET /api/reports
func (h *ReportHandler) ListDatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.ListDates(c.Request.Context()))
}

// GetReportHandler は指定日（または"latest"）のHTMLレポート本文を返します。
//
// エンドポイント例:
// GET /reports/2025-06-02
func (h *ReportHandler) GetReportHandler(c *gin.Context) {
	_, body, err := h.uc.GetHTML(c.Request.Context(), c.Param("asof"))
	if err != nil {
		c.JSON(statusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// GetReportMarkdownHandler は指定日（または"latest"）のMarkdownレポート本文を返します。
//
// エンドポイント例:
// GET /reports/latest/markdown
func (h *ReportHandler) GetReportMarkdownHandler(c *gin.Context) {
	_, body, err := h.uc.GetMarkdown(c.Request.Context(), c.Param("asof"))
	if err != nil {
		c.JSON(statusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", body)
}

// statusForError はドメインエラーをHTTPステータスへ対応付けます。
func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidAsOf):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

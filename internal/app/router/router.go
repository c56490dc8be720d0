// Package router wires every feature handler into the gin engine.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	candleshandler "nikkei_backend/internal/feature/candles/transport/handler"
	forecasthandler "nikkei_backend/internal/feature/forecast/transport/handler"
	ledgerhandler "nikkei_backend/internal/feature/ledger/transport/handler"
	newshandler "nikkei_backend/internal/feature/news/transport/handler"
	pickshandler "nikkei_backend/internal/feature/picks/transport/handler"
	quotehandler "nikkei_backend/internal/feature/quote/transport/handler"
	reportshandler "nikkei_backend/internal/feature/reports/transport/handler"
	settingshandler "nikkei_backend/internal/feature/settings/transport/handler"
	symbolhandler "nikkei_backend/internal/feature/symbollist/transport/handler"
	platformhandler "nikkei_backend/internal/platform/http/handler"
	"nikkei_backend/internal/platform/http/middleware"
)

// Handlers groups every transport handler the router mounts.
type Handlers struct {
	Reports  *reportshandler.ReportHandler
	Picks    *pickshandler.PickHandler
	Candles  *candleshandler.SeriesHandler
	Forecast *forecasthandler.ForecastHandler
	News     *newshandler.NewsHandler
	Quote    *quotehandler.QuoteHandler
	Ledger   *ledgerhandler.LedgerHandler
	Settings *settingshandler.SettingsHandler
	Symbols  *symbolhandler.SymbolHandler
}

// NewRouter builds the gin engine with all routes mounted. templatesDir
// may be empty when no HTML index is served (tests, headless deployments).
func NewRouter(h Handlers, templatesDir string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	// ダッシュボードは別オリジンのブラウザアプリ
	r.Use(cors.Default())

	if templatesDir != "" {
		r.LoadHTMLGlob(templatesDir + "/*.tmpl")
		r.GET("/", h.Reports.Index)
	}

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	// レポート本文（HTMLはダッシュボードのiframeが直接参照する）
	r.GET("/reports/:asof", h.Reports.GetReportHandler)
	r.GET("/reports/:asof/markdown", h.Reports.GetReportMarkdownHandler)

	api := r.Group("/api")
	{
		api.GET("/reports", h.Reports.ListDatesHandler)
		api.GET("/picks", h.Picks.GetLatestHandler)
		api.GET("/picks/:asof", h.Picks.GetPicksHandler)
		api.GET("/candles/:code", h.Candles.GetSeriesHandler)
		api.GET("/forecast/:code", h.Forecast.GetForecastHandler)
		api.GET("/news/:code", h.News.GetNewsHandler)
		api.GET("/quote/:code", h.Quote.GetQuoteHandler)
		api.GET("/ledger", h.Ledger.GetPortfolioHandler)
		api.GET("/ledger/trades", h.Ledger.GetTradesHandler)
		api.GET("/ledger/equity", h.Ledger.GetEquityHandler)
		api.GET("/settings", h.Settings.GetSettingsHandler)
		api.PUT("/settings", h.Settings.UpdateSettingsHandler)
		api.GET("/symbols", h.Symbols.List)
	}

	return r
}

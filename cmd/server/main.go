package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"nikkei_backend/internal/app/router"
	candlesadapters "nikkei_backend/internal/feature/candles/adapters"
	"nikkei_backend/internal/feature/candles/adapters/stooq"
	candleshandler "nikkei_backend/internal/feature/candles/transport/handler"
	candlesusecase "nikkei_backend/internal/feature/candles/usecase"
	forecasthandler "nikkei_backend/internal/feature/forecast/transport/handler"
	forecastusecase "nikkei_backend/internal/feature/forecast/usecase"
	ledgeradapters "nikkei_backend/internal/feature/ledger/adapters"
	ledgerhandler "nikkei_backend/internal/feature/ledger/transport/handler"
	ledgerusecase "nikkei_backend/internal/feature/ledger/usecase"
	newsadapters "nikkei_backend/internal/feature/news/adapters"
	newshandler "nikkei_backend/internal/feature/news/transport/handler"
	newsusecase "nikkei_backend/internal/feature/news/usecase"
	picksadapters "nikkei_backend/internal/feature/picks/adapters"
	"nikkei_backend/internal/feature/picks/extract"
	pickshandler "nikkei_backend/internal/feature/picks/transport/handler"
	picksusecase "nikkei_backend/internal/feature/picks/usecase"
	"nikkei_backend/internal/feature/quote/adapters/yahoojp"
	quotehandler "nikkei_backend/internal/feature/quote/transport/handler"
	quoteusecase "nikkei_backend/internal/feature/quote/usecase"
	reportsadapters "nikkei_backend/internal/feature/reports/adapters"
	reportshandler "nikkei_backend/internal/feature/reports/transport/handler"
	reportsusecase "nikkei_backend/internal/feature/reports/usecase"
	settingsadapters "nikkei_backend/internal/feature/settings/adapters"
	settingshandler "nikkei_backend/internal/feature/settings/transport/handler"
	settingsusecase "nikkei_backend/internal/feature/settings/usecase"
	symboladapters "nikkei_backend/internal/feature/symbollist/adapters"
	symbolhandler "nikkei_backend/internal/feature/symbollist/transport/handler"
	symbolusecase "nikkei_backend/internal/feature/symbollist/usecase"
	"nikkei_backend/internal/platform/cache"
	"nikkei_backend/internal/platform/config"
	platformdb "nikkei_backend/internal/platform/db"
	platformhttp "nikkei_backend/internal/platform/http"
	platformredis "nikkei_backend/internal/platform/redis"
)

func main() {
	// ローカル開発用の .env（無ければそのまま環境変数を使う）
	_ = godotenv.Load()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatal("[FATAL] config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("[FATAL] config: ", err)
	}

	// 設定ストア（唯一の書き込み先）
	db := platformdb.OpenDB(cfg.Database.SQLitePath)

	// Redisは系列キャッシュ専用。無くても全機能が動く。
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without series cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Reports
	reportRepo := reportsadapters.NewReportFSRepository(cfg.Paths.ReportsDir)
	reportsUC := reportsusecase.NewReportsUsecase(reportRepo)

	// Picks（サイドカー優先、レポート本文へのフォールバック付き）
	sidecarRepo := picksadapters.NewSidecarFSRepository(cfg.Paths.ReportsDir)
	extractor := extract.New(cfg.Picks.ReasonKeywords)
	picksUC := picksusecase.NewPicksUsecase(sidecarRepo, reportsUC, extractor)

	// Candles（ネットワークモードはRedisキャッシュ越しにStooqへ）
	var remote candlesusecase.RemoteFetcher
	if cfg.Stooq.Enabled {
		client := stooq.NewClient(
			stooq.WithBaseURL(cfg.Stooq.BaseURL),
			stooq.WithHTTPClient(platformhttp.NewHTTPClient(stooq.RequestTimeout)),
			stooq.WithRateLimit(cfg.Stooq.RateLimit),
		)
		remote = cache.NewCachingSeriesFetcher(rdb, 0, client, "series")
	}
	cacheRepo := candlesadapters.NewCacheFileRepository(cfg.Paths.DataCacheDir)
	candlesUC := candlesusecase.NewCandlesUsecase(cacheRepo, remote, candlesadapters.NewDummySeries())

	// Forecast
	forecastUC := forecastusecase.NewForecastUsecase(candlesUC)

	// News（600秒のソフトキャッシュ）
	rss := newsadapters.NewRSSSource(cfg.News.FeedURL, platformhttp.NewHTTPClient(newsadapters.FetchTimeout))
	newsSource := newsadapters.NewCachedSource(rss, time.Duration(cfg.News.CacheTTLSeconds)*time.Second)
	newsUC := newsusecase.NewNewsUsecase(newsSource)

	// Quote
	quoteClient := yahoojp.NewClient(yahoojp.WithHTTPClient(platformhttp.NewHTTPClient(yahoojp.RequestTimeout)))
	quoteUC := quoteusecase.NewQuoteUsecase(quoteClient)

	// Ledger
	ledgerUC := ledgerusecase.NewLedgerUsecase(ledgeradapters.NewPaperFSRepository(cfg.Paths.PaperDir))

	// Settings
	settingsUC := settingsusecase.NewSettingsUsecase(settingsadapters.NewSettingsRepository(db))

	// Symbols
	symbolUC := symbolusecase.NewSymbolUsecase(symboladapters.NewUniverseFSRepository(cfg.Paths.UniverseFile))

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Reports:  reportshandler.NewReportHandler(reportsUC),
		Picks:    pickshandler.NewPickHandler(picksUC),
		Candles:  candleshandler.NewSeriesHandler(candlesUC),
		Forecast: forecasthandler.NewForecastHandler(forecastUC),
		News:     newshandler.NewNewsHandler(newsUC),
		Quote:    quotehandler.NewQuoteHandler(quoteUC),
		Ledger:   ledgerhandler.NewLedgerHandler(ledgerUC),
		Settings: settingshandler.NewSettingsHandler(settingsUC),
		Symbols:  symbolhandler.NewSymbolHandler(symbolUC),
	}, cfg.Paths.TemplatesDir)

	log.Printf("[INFO] listening on :%d (reports=%s cache=%s stooq=%v)",
		cfg.Server.Port, cfg.Paths.ReportsDir, cfg.Paths.DataCacheDir, cfg.Stooq.Enabled)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatal(err)
	}
}

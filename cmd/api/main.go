package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/srinivaswavy/stock-ai-system/db"
	"github.com/srinivaswavy/stock-ai-system/internal/analyzer"
	"github.com/srinivaswavy/stock-ai-system/internal/config"
	"github.com/srinivaswavy/stock-ai-system/internal/handler"
	"github.com/srinivaswavy/stock-ai-system/internal/repository"
	"github.com/srinivaswavy/stock-ai-system/pkg/news"
)

// redisCache adapts the shared redis helpers to the handler cache interface.
type redisCache struct{}

func (redisCache) Get(symbol string) ([]byte, error) {
	return db.GetCachedAnalysis(symbol)
}

func (redisCache) Set(symbol string, payload []byte) error {
	return db.CacheAnalysis(symbol, payload)
}

func newFetcher(cfg config.Config) handler.NewsFetcher {
	if os.Getenv("NEWS_SOURCE") == "finnhub" {
		key := os.Getenv("FINNHUB_API_KEY")
		if key == "" {
			log.Fatal("NEWS_SOURCE=finnhub requires FINNHUB_API_KEY")
		}
		return news.NewFinnhubClient(key)
	}
	return news.NewYahooClient(cfg.Sources.YahooNewsURL)
}

func main() {

	godotenv.Load()

	cfg := config.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache handler.AnalysisCache
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			slog.Warn("redis unavailable, serving without cache", "error", err)
		} else {
			defer db.CloseRedis()
			cache = redisCache{}
		}
	}

	analysisRepo := repository.NewAnalysisRepository(db.DB)
	analysisHandler := handler.NewAnalysisHandler(newFetcher(cfg), analyzer.NewProcessor(cfg.Analyzer), cache, analysisRepo)

	digestRepo := repository.NewDigestRepository(db.DB)
	digestHandler := handler.NewDigestHandler(digestRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/analysis/:symbol", analysisHandler.GetAnalysis)
	r.GET("/compare", analysisHandler.GetComparison)
	r.GET("/runs", analysisHandler.GetRuns)
	r.GET("/runs/:id", analysisHandler.GetRun)
	r.GET("/digests/latest", digestHandler.GetLatestDigest)
	r.GET("/digests", digestHandler.GetDigests)
	r.GET("/health", analysisHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

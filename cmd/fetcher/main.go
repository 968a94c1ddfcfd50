package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/srinivaswavy/stock-ai-system/db"
	"github.com/srinivaswavy/stock-ai-system/internal/analyzer"
	"github.com/srinivaswavy/stock-ai-system/internal/config"
	"github.com/srinivaswavy/stock-ai-system/internal/repository"
	"github.com/srinivaswavy/stock-ai-system/pkg/news"
)

const defaultFetchLimit = 50

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	clients := []news.RawClient{news.NewYahooClient(cfg.Sources.YahooNewsURL)}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnhubClient(key))
	}

	symbols := drainQueue()
	if len(symbols) == 0 {
		symbols = watchedSymbols()
	}
	if len(symbols) == 0 {
		slog.Error("no symbols queued and WATCH_SYMBOLS is not set")
		return
	}

	limit := fetchLimit()
	processor := analyzer.NewProcessor(cfg.Analyzer)
	repo := repository.NewAnalysisRepository(db.DB)

	for _, client := range clients {
		source := client.Name()

		for _, symbol := range symbols {
			raw, err := client.FetchRaw(symbol, limit)
			if err != nil {
				slog.Error("error fetching news", "source", source, "symbol", symbol, "error", err)
				continue
			}

			result := processor.Process(symbol, raw, limit)
			result.Source = source

			runID, err := repo.SaveRun(&result, source)
			if err != nil {
				slog.Error("error saving run", "source", source, "symbol", symbol, "error", err)
				continue
			}

			if data, err := json.Marshal(result); err == nil {
				if err := db.CacheAnalysis(symbol, data); err != nil {
					slog.Warn("error caching analysis", "symbol", symbol, "error", err)
				}
			}

			slog.Info("run saved", "source", source, "symbol", symbol, "run_id", runID,
				"processed", result.TotalProcessed, "characters", result.Totals.TotalCharacters)
		}
	}
}

// drainQueue pops every symbol currently waiting on the analyze queue.
// Duplicates collapse so a symbol queued twice is analyzed once.
func drainQueue() []string {
	seen := map[string]bool{}
	var symbols []string

	for {
		symbol, err := db.PopSymbol(time.Second)
		if err != nil {
			break
		}
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		symbols = append(symbols, symbol)
	}

	return symbols
}

func watchedSymbols() []string {
	var symbols []string
	for _, s := range strings.Split(os.Getenv("WATCH_SYMBOLS"), ",") {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func fetchLimit() int {
	v := os.Getenv("NEWS_LIMIT")
	if v == "" {
		return defaultFetchLimit
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		slog.Warn("invalid NEWS_LIMIT, using default", "value", v, "default", defaultFetchLimit)
		return defaultFetchLimit
	}
	return n
}

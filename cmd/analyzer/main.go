package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/srinivaswavy/stock-ai-system/internal/analyzer"
	"github.com/srinivaswavy/stock-ai-system/internal/config"
	"github.com/srinivaswavy/stock-ai-system/pkg/news"
)

const (
	defaultSymbol = "AAPL"
	defaultLimit  = 10
)

// Interactive one-shot analysis: prompt for a symbol, fetch, print the
// report, optionally export the full result as JSON.
func main() {
	godotenv.Load()

	cfg := config.Load()
	reader := bufio.NewReader(os.Stdin)

	symbol := prompt(reader, fmt.Sprintf("Enter stock symbol (default: %s): ", defaultSymbol))
	if symbol == "" {
		symbol = defaultSymbol
	}
	symbol = strings.ToUpper(symbol)

	limit := defaultLimit
	if v := prompt(reader, fmt.Sprintf("How many articles? (default: %d): ", defaultLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fmt.Printf("Invalid count %q, using %d\n", v, defaultLimit)
		} else {
			limit = n
		}
	}

	var client news.RawClient = news.NewYahooClient(cfg.Sources.YahooNewsURL)
	if os.Getenv("NEWS_SOURCE") == "finnhub" {
		key := os.Getenv("FINNHUB_API_KEY")
		if key == "" {
			fmt.Println("NEWS_SOURCE=finnhub requires FINNHUB_API_KEY")
			os.Exit(1)
		}
		client = news.NewFinnhubClient(key)
	}

	fmt.Printf("Fetching up to %d articles for %s from %s...\n", limit, symbol, client.Name())

	raw, err := client.FetchRaw(symbol, limit)
	if err != nil {
		slog.Error("error fetching news", "symbol", symbol, "source", client.Name(), "error", err)
		os.Exit(1)
	}

	result := analyzer.NewProcessor(cfg.Analyzer).Process(symbol, raw, limit)
	result.Source = client.Name()

	fmt.Print(analyzer.RenderText(result, cfg.Analyzer.TopArticles))

	if answer := prompt(reader, "Export full results to JSON? (y/n): "); strings.EqualFold(answer, "y") {
		path, err := analyzer.ExportJSON(result, "")
		if err != nil {
			slog.Error("error exporting results", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Results exported to %s\n", path)
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

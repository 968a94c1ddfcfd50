package main

import (
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/srinivaswavy/stock-ai-system/db"
	"github.com/srinivaswavy/stock-ai-system/internal/config"
	"github.com/srinivaswavy/stock-ai-system/internal/model"
	"github.com/srinivaswavy/stock-ai-system/internal/repository"
	"github.com/srinivaswavy/stock-ai-system/pkg/llm"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	analysisRepo := repository.NewAnalysisRepository(db.DB)
	digestRepo := repository.NewDigestRepository(db.DB)

	client := newDigestClient()

	symbol := strings.ToUpper(strings.TrimSpace(os.Getenv("DIGEST_SYMBOL")))

	run, err := analysisRepo.GetLatestRun(symbol)
	if err != nil {
		log.Fatalf("error fetching latest run: %v", err)
	}
	if run == nil {
		slog.Info("no analysis run to digest, exiting", "symbol", symbol)
		return
	}

	articles, err := analysisRepo.GetRunArticles(run.ID)
	if err != nil {
		log.Fatalf("error fetching run articles: %v", err)
	}

	inputs := digestInputs(articles, cfg.Analyzer.TopArticles)
	if len(inputs) == 0 {
		slog.Info("run has no articles with content, exiting", "run_id", run.ID)
		return
	}

	slog.Info("digesting articles", "run_id", run.ID, "symbol", run.Symbol, "count", len(inputs))

	result, err := client.Digest(run.Symbol, inputs)
	if err != nil {
		log.Fatalf("error generating digest: %v", err)
	}

	digest := &model.NewsDigest{
		RunID:        run.ID,
		Symbol:       run.Symbol,
		Paragraph:    result.Paragraph,
		Bullets:      result.Bullets,
		ArticleCount: len(inputs),
		ModelUsed:    result.ModelUsed,
	}

	err = digestRepo.SaveDigest(digest)
	if err != nil {
		log.Fatalf("error saving digest: %v", err)
	}

	slog.Info("digest saved successfully", "digest_id", digest.ID, "run_id", run.ID, "article_count", digest.ArticleCount)
}

func newDigestClient() llm.DigestClient {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIClient(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}
	log.Fatal("no LLM API key configured: set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	return nil
}

// digestInputs picks the top articles by content length, skipping error
// records and empty bodies, so the model sees the meatiest coverage first.
func digestInputs(articles []model.ArticleRecord, top int) []llm.DigestInput {
	ranked := make([]model.ArticleRecord, 0, len(articles))
	for _, a := range articles {
		if !a.IsError() && a.CharCount > 0 {
			ranked = append(ranked, a)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CharCount > ranked[j].CharCount
	})

	if len(ranked) > top {
		ranked = ranked[:top]
	}

	inputs := make([]llm.DigestInput, len(ranked))
	for i, a := range ranked {
		inputs[i] = llm.DigestInput{
			Title:       a.Title,
			Body:        a.Body,
			Publisher:   a.Publisher,
			PublishedAt: a.PublishedAt,
		}
	}
	return inputs
}

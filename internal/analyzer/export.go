package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/srinivaswavy/stock-ai-system/internal/model"
)

// ExportJSON writes a batch result to path as indented UTF-8 JSON and
// returns the path written. When path is empty a name is synthesized from
// the symbol and the current time.
func ExportJSON(res model.BatchResult, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s_news_analysis_%s.json", res.Symbol, time.Now().Format("20060102_150405"))
	}
	return path, writeJSON(path, res)
}

// ExportComparison writes a cross-batch comparison to path. When path is
// empty a timestamped name is synthesized.
func ExportComparison(cmp model.Comparison, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("news_coverage_comparison_%s.json", time.Now().Format("20060102_150405"))
	}
	return path, writeJSON(path, cmp)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package actionable

import (
	"fmt"

	"cx-workbench-go/internal/aggregator"
	"cx-workbench-go/internal/types"
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate turns a dashboard summary into one recommended action. The rule is
// deliberately simple: surface the biggest category when negative sentiment
// dominates, otherwise keep monitoring.
func Generate(s aggregator.Summary) ActionCard {
	if s.Total == 0 {
		return ActionCard{
			Insight: "No interactions in the current view",
			Action:  "Widen filters or ingest more data",
			Impact:  "None",
		}
	}

	negShare := float64(s.BySentiment[types.SentimentNegative]) / float64(s.Total)
	worstCategory := ""
	worstCount := 0
	for cat, cnt := range s.ByCategory {
		if cnt > worstCount {
			worstCount = cnt
			worstCategory = cat
		}
	}

	if negShare >= 0.4 && worstCategory != "" {
		return ActionCard{
			Insight: fmt.Sprintf("Negative sentiment at %.0f%%, concentrated in %q (%d interactions)", negShare*100, worstCategory, worstCount),
			Action:  fmt.Sprintf("Drill into %q in the workbench and review the negative records", worstCategory),
			Impact:  "Targets the largest driver of dissatisfaction",
		}
	}
	return ActionCard{
		Insight: "No strong negative pattern detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}

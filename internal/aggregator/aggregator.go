// Package aggregator computes the dashboard and ribbon aggregates. All
// functions are pure over a record slice.
package aggregator

import (
	"sort"

	"cx-workbench-go/internal/types"
)

type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Summary backs the dashboard widgets: issue tables, sentiment chart, channel
// and NPS splits, top topics.
type Summary struct {
	Total       int                     `json:"total"`
	BySentiment map[types.Sentiment]int `json:"by_sentiment"`
	ByCategory  map[string]int          `json:"by_category"`
	ByChannel   map[string]int          `json:"by_channel"`
	ByNPSGroup  map[string]int          `json:"by_nps_group"`
	TopTopics   []TopicCount            `json:"top_topics"`
}

func Summarize(records []types.Interaction) Summary {
	s := Summary{
		Total:       len(records),
		BySentiment: map[types.Sentiment]int{},
		ByCategory:  map[string]int{},
		ByChannel:   map[string]int{},
		ByNPSGroup:  map[string]int{},
	}
	topics := map[string]int{}
	for _, r := range records {
		s.BySentiment[r.Sentiment]++
		if r.Category != "" {
			s.ByCategory[r.Category]++
		}
		if r.Channel != "" {
			s.ByChannel[r.Channel]++
		}
		if r.NPS != nil {
			s.ByNPSGroup[types.NPSGroup(*r.NPS)]++
		}
		if r.Topic != "" {
			topics[r.Topic]++
		}
	}
	for t, c := range topics {
		s.TopTopics = append(s.TopTopics, TopicCount{Topic: t, Count: c})
	}
	sort.Slice(s.TopTopics, func(i, j int) bool {
		if s.TopTopics[i].Count != s.TopTopics[j].Count {
			return s.TopTopics[i].Count > s.TopTopics[j].Count
		}
		return s.TopTopics[i].Topic < s.TopTopics[j].Topic
	})
	if len(s.TopTopics) > 5 {
		s.TopTopics = s.TopTopics[:5]
	}
	return s
}

// Breakdown is the facet ribbon's sentiment bar: counts plus 0-1 shares.
type Breakdown struct {
	Total  int                         `json:"total"`
	Counts map[types.Sentiment]int     `json:"counts"`
	Shares map[types.Sentiment]float64 `json:"shares"`
}

func SentimentBreakdown(records []types.Interaction) Breakdown {
	b := Breakdown{
		Counts: map[types.Sentiment]int{},
		Shares: map[types.Sentiment]float64{},
	}
	for _, r := range records {
		switch r.Sentiment {
		case types.SentimentNegative, types.SentimentNeutral, types.SentimentPositive:
			b.Counts[r.Sentiment]++
			b.Total++
		}
	}
	for sent, c := range b.Counts {
		if b.Total > 0 {
			b.Shares[sent] = float64(c) / float64(b.Total)
		}
	}
	return b
}

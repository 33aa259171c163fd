package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cx-workbench-go/internal/types"
)

func nps(n int) *int { return &n }

func TestSummarize(t *testing.T) {
	records := []types.Interaction{
		{ID: "1", Kind: types.KindSurvey, Category: "Billing", Sentiment: types.SentimentNegative, Channel: "App", Topic: "Coupons", NPS: nps(2), Text: "x"},
		{ID: "2", Kind: types.KindSurvey, Category: "Billing", Sentiment: types.SentimentNegative, Channel: "App", Topic: "Coupons", NPS: nps(7), Text: "x"},
		{ID: "3", Kind: types.KindReview, Category: "Service speed", Sentiment: types.SentimentPositive, Channel: "Google Reviews", Topic: "Drive-Thru", NPS: nps(10), Text: "x"},
		{ID: "4", Kind: types.KindCall, Sentiment: types.SentimentNeutral, Channel: "Phone", Transcript: []types.TranscriptEntry{{Text: "x"}}},
	}

	s := Summarize(records)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.BySentiment[types.SentimentNegative])
	assert.Equal(t, 1, s.BySentiment[types.SentimentPositive])
	assert.Equal(t, 1, s.BySentiment[types.SentimentNeutral])

	assert.Equal(t, 2, s.ByCategory["Billing"])
	assert.Equal(t, 1, s.ByCategory["Service speed"])
	assert.NotContains(t, s.ByCategory, "")

	assert.Equal(t, 2, s.ByChannel["App"])
	assert.Equal(t, 1, s.ByNPSGroup["Detractor"])
	assert.Equal(t, 1, s.ByNPSGroup["Passive"])
	assert.Equal(t, 1, s.ByNPSGroup["Promoter"])

	require.Len(t, s.TopTopics, 2)
	assert.Equal(t, TopicCount{Topic: "Coupons", Count: 2}, s.TopTopics[0])
}

func TestSummarizeTopTopicsCapAndOrder(t *testing.T) {
	var records []types.Interaction
	topics := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, topic := range topics {
		// topic i appears i+1 times
		for j := 0; j <= i; j++ {
			records = append(records, types.Interaction{
				ID: topic + string(rune('0'+j)), Kind: types.KindSocial,
				Sentiment: types.SentimentNeutral, Topic: topic, Text: "x",
			})
		}
	}

	s := Summarize(records)
	require.Len(t, s.TopTopics, 5)
	assert.Equal(t, "G", s.TopTopics[0].Topic)
	assert.Equal(t, 7, s.TopTopics[0].Count)
	assert.Equal(t, "C", s.TopTopics[4].Topic)
}

func TestSummarizeTopTopicsTieBreaksByName(t *testing.T) {
	records := []types.Interaction{
		{ID: "1", Kind: types.KindSocial, Sentiment: types.SentimentNeutral, Topic: "Zebra", Text: "x"},
		{ID: "2", Kind: types.KindSocial, Sentiment: types.SentimentNeutral, Topic: "Apple", Text: "x"},
	}
	s := Summarize(records)
	require.Len(t, s.TopTopics, 2)
	assert.Equal(t, "Apple", s.TopTopics[0].Topic)
}

func TestSentimentBreakdown(t *testing.T) {
	records := []types.Interaction{
		{ID: "1", Kind: types.KindSurvey, Sentiment: types.SentimentNegative, Text: "x"},
		{ID: "2", Kind: types.KindSurvey, Sentiment: types.SentimentNegative, Text: "x"},
		{ID: "3", Kind: types.KindSurvey, Sentiment: types.SentimentNegative, Text: "x"},
		{ID: "4", Kind: types.KindSurvey, Sentiment: types.SentimentPositive, Text: "x"},
		{ID: "5", Kind: types.KindSurvey, Sentiment: "weird", Text: "x"},
	}

	b := SentimentBreakdown(records)
	assert.Equal(t, 4, b.Total, "unknown sentiment labels are ignored")
	assert.Equal(t, 3, b.Counts[types.SentimentNegative])
	assert.InDelta(t, 0.75, b.Shares[types.SentimentNegative], 1e-9)
	assert.InDelta(t, 0.25, b.Shares[types.SentimentPositive], 1e-9)
}

func TestSentimentBreakdownEmpty(t *testing.T) {
	b := SentimentBreakdown(nil)
	assert.Zero(t, b.Total)
	assert.Empty(t, b.Shares)
}

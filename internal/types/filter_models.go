package types

// Facet names understood by the predicate engine. Filters with any other type
// are accepted into state but never narrow the result set.
const (
	FacetCategory  = "Category"
	FacetTopic     = "Topic"
	FacetSentiment = "Sentiment"
	FacetChannel   = "Channel"
	FacetNPSGroup  = "NPS Group"
	FacetCoupon    = "Coupon"
	FacetDataset   = "Dataset"
)

// FilterSpec is one (facet, value) pair. Local filters are plain specs with no
// identity of their own.
type FilterSpec struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// GlobalFilter is a dashboard-inherited filter. It keeps an id so the analyst
// can remove it independently; once removed it is never restored.
type GlobalFilter struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Spec returns the predicate-engine view of the filter.
func (g GlobalFilter) Spec() FilterSpec {
	return FilterSpec{Type: g.Type, Value: g.Value}
}

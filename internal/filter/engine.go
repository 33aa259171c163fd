// Package filter evaluates filter specs against interaction records. All of
// it is pure: the same dataset, specs and query always produce the same
// result, which is what makes Pipeline memoization safe.
package filter

import (
	"encoding/json"
	"strings"

	"cx-workbench-go/internal/types"
)

// Apply narrows records by each spec in list order. Later specs only ever
// narrow the result of earlier ones. Specs with an unrecognized facet type or
// value keep the set unchanged.
func Apply(records []types.Interaction, specs []types.FilterSpec) []types.Interaction {
	result := records
	for _, spec := range specs {
		result = applyOne(result, spec)
	}
	return result
}

func applyOne(records []types.Interaction, spec types.FilterSpec) []types.Interaction {
	var pred func(types.Interaction) bool

	switch spec.Type {
	case types.FacetCategory:
		want := strings.ToLower(spec.Value)
		pred = func(r types.Interaction) bool {
			return strings.ToLower(r.Category) == want
		}

	case types.FacetTopic:
		pred = topicPredicate(spec.Value)

	case types.FacetSentiment:
		pred = func(r types.Interaction) bool {
			return string(r.Sentiment) == spec.Value
		}

	case types.FacetChannel:
		pred = func(r types.Interaction) bool {
			return r.Channel == spec.Value
		}

	case types.FacetNPSGroup:
		switch spec.Value {
		case "Detractor", "Passive", "Promoter":
			pred = func(r types.Interaction) bool {
				return r.NPS != nil && types.NPSGroup(*r.NPS) == spec.Value
			}
		default:
			return records
		}

	case types.FacetCoupon:
		if spec.Value != "Yes" {
			return records
		}
		pred = func(r types.Interaction) bool {
			return r.Topic == "Coupons" || strings.Contains(strings.ToLower(r.Content()), "coupon")
		}

	default:
		return records
	}

	out := make([]types.Interaction, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// topicPredicate keeps the legacy topic semantics: a few well-known values
// map to field or substring tests, everything else falls back to a substring
// scan over the serialized record.
func topicPredicate(value string) func(types.Interaction) bool {
	switch value {
	case "Drive-Thru":
		return func(r types.Interaction) bool { return r.Topic == "Drive-Thru" }
	case "Coupon":
		return func(r types.Interaction) bool { return r.Topic == "Coupons" }
	case "Wait":
		return func(r types.Interaction) bool {
			return strings.Contains(strings.ToLower(r.Content()), "wait")
		}
	default:
		needle := strings.ToLower(value)
		return func(r types.Interaction) bool {
			raw, err := json.Marshal(r)
			if err != nil {
				return false
			}
			return strings.Contains(strings.ToLower(string(raw)), needle)
		}
	}
}

// SearchText is the per-record haystack for the free-text search stage.
func SearchText(r types.Interaction) string {
	return strings.ToLower(strings.Join([]string{
		r.Content(), r.Category, r.Topic, r.Channel, string(r.Sentiment),
	}, " "))
}

// ApplyQuery narrows records by a settled search query. Empty or
// whitespace-only queries keep the set unchanged.
func ApplyQuery(records []types.Interaction, query string) []types.Interaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]types.Interaction, 0, len(records))
	for _, r := range records {
		if strings.Contains(SearchText(r), q) {
			out = append(out, r)
		}
	}
	return out
}

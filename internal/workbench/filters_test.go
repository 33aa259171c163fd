package workbench

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cx-workbench-go/internal/types"
)

func TestNewFilterStateSeedsDefaults(t *testing.T) {
	s := NewFilterState(nil, nil)
	global := s.Global()
	assert.Len(t, global, 3)
	for _, g := range global {
		assert.Equal(t, types.FacetDataset, g.Type)
	}
}

func TestNewFilterStateSeedsDrillFilterWithInitialID(t *testing.T) {
	drill := &types.FilterSpec{Type: types.FacetCategory, Value: "Billing"}
	s := NewFilterState([]types.GlobalFilter{{ID: "g1", Type: types.FacetChannel, Value: "Phone"}}, drill)

	global := s.Global()
	assert.Equal(t, []types.GlobalFilter{
		{ID: "g1", Type: types.FacetChannel, Value: "Phone"},
		{ID: "initial", Type: types.FacetCategory, Value: "Billing"},
	}, global)
}

func TestToggleInvolution(t *testing.T) {
	s := NewFilterState(nil, nil)
	s.Toggle(types.FacetSentiment, "Negative")
	assert.Len(t, s.Active(), 1)
	s.Toggle(types.FacetSentiment, "Negative")
	assert.Empty(t, s.Active())
}

func TestToggleSingleSelectReplacesSameFacet(t *testing.T) {
	s := NewFilterState(nil, nil)
	s.Toggle(types.FacetSentiment, "Negative")
	s.Toggle(types.FacetSentiment, "Positive")

	assert.Equal(t, []types.FilterSpec{{Type: types.FacetSentiment, Value: "Positive"}}, s.Active())
}

func TestToggleTopicIsAdditive(t *testing.T) {
	s := NewFilterState(nil, nil)
	s.Toggle(types.FacetTopic, "Drive-Thru")
	s.Toggle(types.FacetTopic, "Coupon")
	s.Toggle(types.FacetTopic, "Wait")

	assert.Equal(t, []types.FilterSpec{
		{Type: types.FacetTopic, Value: "Drive-Thru"},
		{Type: types.FacetTopic, Value: "Coupon"},
		{Type: types.FacetTopic, Value: "Wait"},
	}, s.Active())

	// re-toggling one value removes only that value
	s.Toggle(types.FacetTopic, "Coupon")
	assert.Equal(t, []types.FilterSpec{
		{Type: types.FacetTopic, Value: "Drive-Thru"},
		{Type: types.FacetTopic, Value: "Wait"},
	}, s.Active())
}

func TestToggleReplaceKeepsOtherFacets(t *testing.T) {
	s := NewFilterState(nil, nil)
	s.Toggle(types.FacetTopic, "Drive-Thru")
	s.Toggle(types.FacetChannel, "App")
	s.Toggle(types.FacetChannel, "Phone")

	assert.Equal(t, []types.FilterSpec{
		{Type: types.FacetTopic, Value: "Drive-Thru"},
		{Type: types.FacetChannel, Value: "Phone"},
	}, s.Active())
}

func TestRemoveGlobal(t *testing.T) {
	s := NewFilterState([]types.GlobalFilter{
		{ID: "g1", Type: types.FacetChannel, Value: "Phone"},
		{ID: "g2", Type: types.FacetCategory, Value: "Billing"},
	}, nil)

	s.RemoveGlobal("g1")
	assert.Equal(t, []types.GlobalFilter{{ID: "g2", Type: types.FacetCategory, Value: "Billing"}}, s.Global())

	// unknown id is a no-op
	s.RemoveGlobal("g1")
	s.RemoveGlobal("nope")
	assert.Len(t, s.Global(), 1)
}

func TestHasFacetLooksAtBothSets(t *testing.T) {
	s := NewFilterState([]types.GlobalFilter{{ID: "g1", Type: types.FacetCategory, Value: "Billing"}}, nil)
	assert.True(t, s.HasFacet(types.FacetCategory))
	assert.False(t, s.HasFacet(types.FacetTopic))

	s.Toggle(types.FacetTopic, "Wait")
	assert.True(t, s.HasFacet(types.FacetTopic))
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := NewFilterState(nil, nil)
	s.Toggle(types.FacetTopic, "Wait")

	active := s.Active()
	active[0].Value = "mutated"
	assert.Equal(t, "Wait", s.Active()[0].Value)

	global := s.Global()
	global[0].ID = "mutated"
	assert.NotEqual(t, "mutated", s.Global()[0].ID)
}

package utilization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priorities(recs []Recommendation) []Priority {
	out := make([]Priority, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Priority)
	}
	return out
}

func TestRecommend_Bands(t *testing.T) {
	tests := []struct {
		name string
		in   RecommendationInput
		want []Priority
	}{
		{"critical overload", RecommendationInput{UtilizationPercent: 138, ExcessHours: 12}, []Priority{PriorityCritical, PriorityHigh}},
		{"overallocated", RecommendationInput{UtilizationPercent: 110}, []Priority{PriorityHigh}},
		{"overallocated with problem weeks", RecommendationInput{UtilizationPercent: 120, ProblematicPeriods: 2}, []Priority{PriorityHigh, PriorityMedium}},
		{"at capacity", RecommendationInput{UtilizationPercent: 100}, []Priority{PriorityMedium, PriorityMedium}},
		{"near capacity many projects", RecommendationInput{UtilizationPercent: 90, ContributingProjects: 3}, []Priority{PriorityMedium, PriorityMedium, PriorityLow}},
		{"optimal high", RecommendationInput{UtilizationPercent: 88}, []Priority{PriorityLow}},
		{"optimal with room", RecommendationInput{UtilizationPercent: 70}, []Priority{PriorityLow, PriorityLow}},
		{"moderate", RecommendationInput{UtilizationPercent: 50}, []Priority{PriorityMedium, PriorityLow}},
		{"low", RecommendationInput{UtilizationPercent: 6}, []Priority{PriorityHigh}},
		{"none", RecommendationInput{}, []Priority{PriorityHigh}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, priorities(Recommend(tt.in)))
		})
	}
}

func TestRecommend_InterpolatesUpstreamValues(t *testing.T) {
	recs := Recommend(RecommendationInput{UtilizationPercent: 138, ExcessHours: 12})

	require.Len(t, recs, 2)
	assert.Equal(t, "redistribution", recs[0].Type)
	assert.Contains(t, recs[0].Description, "138%")
	assert.Contains(t, recs[1].Description, "12.0 hours")
	assert.Contains(t, recs[1].Description, "38% over")
}

func TestRecommend_Types(t *testing.T) {
	assert.Equal(t, "unassigned", Recommend(RecommendationInput{})[0].Type)
	assert.Equal(t, "under-utilization", Recommend(RecommendationInput{UtilizationPercent: 30})[0].Type)
	assert.Equal(t, "timeline-adjustment", Recommend(RecommendationInput{UtilizationPercent: 101, ProblematicPeriods: 1})[1].Type)
	assert.Equal(t, "priority-review", Recommend(RecommendationInput{UtilizationPercent: 95, ContributingProjects: 2})[2].Type)
	assert.Equal(t, "opportunity", Recommend(RecommendationInput{UtilizationPercent: 84})[1].Type)
}

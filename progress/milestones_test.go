package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossedMilestones(t *testing.T) {
	tests := []struct {
		name     string
		defs     []MilestoneDef
		oldTotal int64
		newTotal int64
		want     []string
	}{
		{
			name:     "crosses first threshold",
			defs:     Milestones,
			oldTotal: 590,
			newTotal: 650,
			want:     []string{"Beginner"},
		},
		{
			name:     "exact landing on threshold counts",
			defs:     Milestones,
			oldTotal: 0,
			newTotal: 600,
			want:     []string{"Beginner"},
		},
		{
			name:     "already above threshold does not re-fire",
			defs:     Milestones,
			oldTotal: 700,
			newTotal: 900,
			want:     nil,
		},
		{
			name:     "crosses only the next threshold",
			defs:     Milestones,
			oldTotal: 7150,
			newTotal: 7250,
			want:     []string{"Expert"},
		},
		{
			name:     "single jump crosses several thresholds",
			defs:     Milestones,
			oldTotal: 0,
			newTotal: 2000,
			want:     []string{"Beginner", "Intermediate"},
		},
		{
			name:     "company bronze crossing",
			defs:     CompanyMilestones,
			oldTotal: 29900,
			newTotal: 30100,
			want:     []string{"Bronze"},
		},
		{
			name:     "no movement no crossings",
			defs:     Milestones,
			oldTotal: 500,
			newTotal: 500,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CrossedMilestones(tt.defs, tt.oldTotal, tt.newTotal)
			var names []string
			for _, def := range got {
				names = append(names, def.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMilestoneTablesAscending(t *testing.T) {
	for _, defs := range [][]MilestoneDef{Milestones, CompanyMilestones} {
		for i := 1; i < len(defs); i++ {
			assert.Greater(t, defs[i].Seconds, defs[i-1].Seconds,
				"%s must come after %s", defs[i].Name, defs[i-1].Name)
		}
	}
}

func TestCurrentAndNextMilestone(t *testing.T) {
	assert.Nil(t, CurrentMilestone(Milestones, 0))
	assert.Equal(t, "Beginner", NextMilestone(Milestones, 0).Name)

	assert.Equal(t, "Beginner", CurrentMilestone(Milestones, 600).Name)
	assert.Equal(t, "Intermediate", NextMilestone(Milestones, 600).Name)

	assert.Equal(t, "Master", CurrentMilestone(Milestones, 20000).Name)
	assert.Nil(t, NextMilestone(Milestones, 20000))
}

package analytics_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/crispyBCN13/LifeLog/internal/analytics"
	"github.com/crispyBCN13/LifeLog/internal/model"
)

func TestComputeProjection_Empty(t *testing.T) {
	p := analytics.ComputeProjection(nil, "", 1, now)
	gt.Equal(t, p.WindowCount, 0)
	gt.Equal(t, p.AvgPerDay, 0.0)
	gt.Equal(t, p.Projections, analytics.Projections{})
	gt.Equal(t, p.Noun, "log(s) across all categories")
	gt.Equal(t, p.Basis, analytics.Basis{Count: 0, WindowDays: 30, Multiplier: 1, CategoryLabel: "all categories"})

	_, basis := p.Describe()
	gt.S(t, basis).Contains("No logs in the last 30 days for all categories")
}

func TestComputeProjection_FilteredWithMultiplier(t *testing.T) {
	var entries []model.Entry
	for i := 0; i < 15; i++ {
		entries = append(entries, entry("Fitness", daysAgo(float64(i)*1.9)))
	}
	entries = append(entries,
		entry("Reading", now),
		entry("Fitness", daysAgo(30.5)),
	)

	p := analytics.ComputeProjection(entries, "Fitness", 2.0, now)
	gt.Equal(t, p.WindowCount, 15)
	gt.Equal(t, p.AvgPerDay, 0.5)
	gt.Equal(t, p.Projections, analytics.Projections{D30: 30.0, D180: 180.0, D365: 365.0})
	gt.Equal(t, p.Noun, "workouts logged")
	gt.Equal(t, p.Basis.CategoryLabel, "Fitness")
	gt.Equal(t, p.Basis.Multiplier, 2.0)

	lines, basis := p.Describe()
	gt.A(t, lines).Length(3)
	gt.Equal(t, lines[1].Description, "workouts logged in the next 6 months")
	gt.Equal(t, basis, "Based on 15 log(s) in the last 30 days for Fitness, scaled by a 2.0× consistency slider.")
}

func TestComputeProjection_WindowEdge(t *testing.T) {
	entries := []model.Entry{
		entry("", now.Add(-30*analytics.Day)),
		entry("", now.Add(-30*analytics.Day-1)),
	}
	p := analytics.ComputeProjection(entries, "", 1, now)
	gt.Equal(t, p.WindowCount, 1)
}

func TestComputeProjection_UnknownFilter(t *testing.T) {
	entries := []model.Entry{entry("A", now), entry("A", daysAgo(3))}
	p := analytics.ComputeProjection(entries, "Nope", 1, now)
	gt.Equal(t, p.WindowCount, 0)
	gt.Equal(t, p.Projections.D365, 0.0)
	gt.Equal(t, p.Noun, "log(s)")
}

func TestComputeProjection_Rounding(t *testing.T) {
	// 1 entry: 1/30 per day, 365 days → 12.1666… → 12.2
	p := analytics.ComputeProjection([]model.Entry{entry("", now)}, "", 1, now)
	gt.Equal(t, p.Projections.D30, 1.0)
	gt.Equal(t, p.Projections.D180, 6.0)
	gt.Equal(t, p.Projections.D365, 12.2)
}

func TestComputeProjection_MultiplierNormalised(t *testing.T) {
	entries := []model.Entry{entry("", now), entry("", now)}
	base := analytics.ComputeProjection(entries, "", 1, now)
	for _, m := range []float64{0, -2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := analytics.ComputeProjection(entries, "", m, now)
		gt.Equal(t, p.Basis.Multiplier, 1.0)
		gt.Equal(t, p.Projections, base.Projections)
	}
}

func TestComputeProjection_Properties(t *testing.T) {
	var entries []model.Entry
	for i := 0; i < 7; i++ {
		entries = append(entries, entry("Work", daysAgo(float64(i)*3)))
	}

	a := analytics.ComputeProjection(entries, "Work", 1.3, now)
	b := analytics.ComputeProjection(entries, "Work", 1.3, now)
	gt.True(t, reflect.DeepEqual(a, b))

	// linearity across horizons
	gt.True(t, math.Abs(a.Projections.D365-a.Projections.D30*365/30) <= 0.1*365/30+0.1)

	// doubling the multiplier doubles every horizon
	d := analytics.ComputeProjection(entries, "Work", 2.6, now)
	gt.True(t, math.Abs(d.Projections.D30-2*a.Projections.D30) <= 0.2)
	gt.True(t, math.Abs(d.Projections.D180-2*a.Projections.D180) <= 0.2)
	gt.True(t, math.Abs(d.Projections.D365-2*a.Projections.D365) <= 0.2)
}

func TestParseMultiplier(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{" 2 ", 2},
		{"0", 1},
		{"-1", 1},
		{"abc", 1},
		{"", 1},
		{"NaN", 1},
		{"Inf", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			gt.Equal(t, analytics.ParseMultiplier(tt.in), tt.want)
		})
	}
}

func TestProjectionNoun(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Fitness", "workouts logged"},
		{"Morning GYM", "workouts logged"},
		{"Workout", "workouts logged"},
		{"Strength Training", "workouts logged"},
		{"Finance Log", "money-related logs"},
		{"Savings", "money-related logs"},
		{"Monthly budget", "money-related logs"},
		{"Games", "gaming sessions logged"},
		{"Homework", "work logs"},
		{"Fitness budget", "workouts logged"},
		{"all categories", "log(s) across all categories"},
		{"", "log(s) across all categories"},
		{"Reading", "log(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			gt.Equal(t, analytics.ProjectionNoun(tt.label), tt.want)
		})
	}
}

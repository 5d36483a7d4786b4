package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/crispyBCN13/LifeLog/internal/model"
)

// ProjectionWindowDays is the trailing window the daily rate is taken from.
const ProjectionWindowDays = 30

// AllCategoriesLabel names the unfiltered projection.
const AllCategoriesLabel = "all categories"

// Projections holds the rounded forecast for each horizon.
type Projections struct {
	D30  float64 `json:"d30"`
	D180 float64 `json:"d180"`
	D365 float64 `json:"d365"`
}

// Basis describes what a projection was computed from.
type Basis struct {
	Count         int     `json:"count"`
	WindowDays    int     `json:"window_days"`
	Multiplier    float64 `json:"multiplier"`
	CategoryLabel string  `json:"category_label"`
}

// Projection is the result of ComputeProjection.
type Projection struct {
	WindowCount int         `json:"window_count"`
	AvgPerDay   float64     `json:"avg_per_day"`
	Projections Projections `json:"projections"`
	Noun        string      `json:"noun"`
	Basis       Basis       `json:"basis"`
}

// ComputeProjection extrapolates the trailing 30-day rate of entries,
// optionally restricted to one category, to 30, 180 and 365 days ahead.
// An empty window is valid and projects zero everywhere.
func ComputeProjection(entries []model.Entry, categoryFilter string, multiplier float64, now time.Time) Projection {
	multiplier = NormalizeMultiplier(multiplier)
	w := Window{Days: ProjectionWindowDays}

	count := 0
	for _, e := range entries {
		if !w.Contains(now, e.Timestamp) {
			continue
		}
		if categoryFilter != "" && e.Category != categoryFilter {
			continue
		}
		count++
	}

	avg := float64(count) / ProjectionWindowDays
	label := categoryFilter
	if label == "" {
		label = AllCategoriesLabel
	}

	return Projection{
		WindowCount: count,
		AvgPerDay:   avg,
		Projections: Projections{
			D30:  round1(avg * 30 * multiplier),
			D180: round1(avg * 180 * multiplier),
			D365: round1(avg * 365 * multiplier),
		},
		Noun: ProjectionNoun(label),
		Basis: Basis{
			Count:         count,
			WindowDays:    ProjectionWindowDays,
			Multiplier:    multiplier,
			CategoryLabel: label,
		},
	}
}

// round1 rounds to one decimal place, halves away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// NormalizeMultiplier returns m when it is a positive finite number, 1 otherwise.
func NormalizeMultiplier(m float64) float64 {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return 1
	}
	return m
}

// ParseMultiplier parses user input leniently; anything unusable becomes 1.
func ParseMultiplier(s string) float64 {
	m, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}
	return NormalizeMultiplier(m)
}

type nounRule struct {
	keywords []string
	noun     string
}

// Checked in order; the first rule with a matching keyword wins.
var nounRules = []nounRule{
	{[]string{"fit", "gym", "workout", "training"}, "workouts logged"},
	{[]string{"finance", "money", "budget", "savings"}, "money-related logs"},
	{[]string{"game"}, "gaming sessions logged"},
	{[]string{"work"}, "work logs"},
}

// ProjectionNoun picks a display noun for a category label.
func ProjectionNoun(label string) string {
	lower := strings.ToLower(label)
	for _, r := range nounRules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.noun
			}
		}
	}
	if lower == "" || lower == AllCategoriesLabel {
		return "log(s) across all categories"
	}
	return "log(s)"
}

// HorizonLine is one human-readable projection row.
type HorizonLine struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// Describe renders the projection as display lines plus a basis sentence.
func (p Projection) Describe() ([]HorizonLine, string) {
	lines := []HorizonLine{
		{p.Projections.D30, p.Noun + " in the next 30 days"},
		{p.Projections.D180, p.Noun + " in the next 6 months"},
		{p.Projections.D365, p.Noun + " in the next year"},
	}

	b := p.Basis
	if b.Count == 0 {
		return lines, fmt.Sprintf("No logs in the last %d days for %s. Start logging to see projections.",
			b.WindowDays, b.CategoryLabel)
	}
	return lines, fmt.Sprintf("Based on %d log(s) in the last %d days for %s, scaled by a %.1f× consistency slider.",
		b.Count, b.WindowDays, b.CategoryLabel, b.Multiplier)
}

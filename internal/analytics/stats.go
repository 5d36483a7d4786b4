package analytics

import (
	"time"

	"github.com/crispyBCN13/LifeLog/internal/model"
)

// MinBarFraction is the smallest fraction reported for a distribution bar,
// so zero-count categories still show up.
const MinBarFraction = 0.08

// CategoryCount is a category name with its number of entries.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Bar is one row of the category distribution.
type Bar struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"`
}

// Stats is the result of ComputeStats.
type Stats struct {
	CountLast7  int `json:"count_last_7"`
	CountLast30 int `json:"count_last_30"`

	// NoData is set when there are no categories and no categorised entries.
	NoData bool `json:"no_data"`

	MostActive  *CategoryCount `json:"most_active,omitempty"`
	LeastActive *CategoryCount `json:"least_active,omitempty"`

	// NoEntriesYet is set when categories exist but none has an entry.
	// Distribution is empty in that case.
	NoEntriesYet bool  `json:"no_entries_yet"`
	Distribution []Bar `json:"distribution"`
}

// orderedCounts is a name→count map that remembers insertion order.
type orderedCounts struct {
	names []string
	index map[string]int
	count []int
}

func newOrderedCounts(capacity int) *orderedCounts {
	return &orderedCounts{
		names: make([]string, 0, capacity),
		index: make(map[string]int, capacity),
		count: make([]int, 0, capacity),
	}
}

// seed adds name with a zero count if it is not present yet.
func (o *orderedCounts) seed(name string) int {
	if i, ok := o.index[name]; ok {
		return i
	}
	o.index[name] = len(o.names)
	o.names = append(o.names, name)
	o.count = append(o.count, 0)
	return len(o.names) - 1
}

func (o *orderedCounts) inc(name string) {
	o.count[o.seed(name)]++
}

func (o *orderedCounts) len() int { return len(o.names) }

// ComputeStats builds rolling-window counts and the per-category breakdown.
//
// Registry categories are listed first in registry order, even with zero
// entries. Category names found only on entries follow in the order they
// are first seen. Most and least active use strict comparison, so the
// earliest name in that order wins a tie.
func ComputeStats(entries []model.Entry, categories []model.Category, now time.Time) Stats {
	st := Stats{
		CountLast7:   CountWithin(entries, now, 7),
		CountLast30:  CountWithin(entries, now, 30),
		Distribution: []Bar{},
	}

	counts := newOrderedCounts(len(categories))
	for _, c := range categories {
		counts.seed(c.Name)
	}
	for _, e := range entries {
		if e.Category != "" {
			counts.inc(e.Category)
		}
	}

	if counts.len() == 0 {
		st.NoData = true
		return st
	}

	most, least := 0, 0
	for i := 1; i < counts.len(); i++ {
		if counts.count[i] > counts.count[most] {
			most = i
		}
		if counts.count[i] < counts.count[least] {
			least = i
		}
	}
	st.MostActive = &CategoryCount{Name: counts.names[most], Count: counts.count[most]}
	st.LeastActive = &CategoryCount{Name: counts.names[least], Count: counts.count[least]}

	maxCount := counts.count[most]
	if maxCount == 0 {
		st.NoEntriesYet = true
		return st
	}

	st.Distribution = make([]Bar, 0, counts.len())
	for i, name := range counts.names {
		frac := float64(counts.count[i]) / float64(maxCount)
		if frac < MinBarFraction {
			frac = MinBarFraction
		}
		st.Distribution = append(st.Distribution, Bar{Name: name, Count: counts.count[i], Fraction: frac})
	}
	return st
}

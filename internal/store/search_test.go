package store

import (
	"context"
	"testing"
	"time"
)

func seedEntries(t *testing.T, s *SQLiteStore) {
	t.Helper()
	ctx := context.Background()
	day := 24 * time.Hour
	for _, p := range []EntryParams{
		{Text: "Morning run", Category: "Fitness", Timestamp: testNow.Add(-1 * time.Hour)},
		{Text: "Budget review", Category: "Finance", Notes: "groceries over", Timestamp: testNow.Add(-3 * day)},
		{Text: "Leg day", Category: "Fitness", Notes: "Squats", Timestamp: testNow.Add(-10 * day)},
		{Text: "Random thought", Timestamp: testNow.Add(-40 * day)},
	} {
		if _, err := s.AddEntry(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestListEntries_Filters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedEntries(t, s)

	tests := []struct {
		name string
		p    ListParams
		want []string
	}{
		{"all", ListParams{}, []string{"Morning run", "Budget review", "Leg day", "Random thought"}},
		{"category", ListParams{Category: "Fitness"}, []string{"Morning run", "Leg day"}},
		{"days", ListParams{Days: 7}, []string{"Morning run", "Budget review"}},
		{"days 30", ListParams{Days: 30}, []string{"Morning run", "Budget review", "Leg day"}},
		{"search text", ListParams{Search: "RUN"}, []string{"Morning run"}},
		{"search notes", ListParams{Search: "squats"}, []string{"Leg day"}},
		{"search category", ListParams{Search: "finance"}, []string{"Budget review"}},
		{"combined", ListParams{Category: "Fitness", Days: 7}, []string{"Morning run"}},
		{"limit", ListParams{Limit: 2}, []string{"Morning run", "Budget review"}},
		{"no match", ListParams{Search: "javascript"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListEntries(ctx, tt.p)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d entries, got %d", len(tt.want), len(got))
			}
			for i, e := range got {
				if e.Text != tt.want[i] {
					t.Errorf("entry %d: expected %q, got %q", i, tt.want[i], e.Text)
				}
			}
		})
	}
}

func TestListEntries_DaysBoundary(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.AddEntry(ctx, EntryParams{Text: "edge", Timestamp: testNow.Add(-7 * 24 * time.Hour)})
	s.AddEntry(ctx, EntryParams{Text: "past", Timestamp: testNow.Add(-7*24*time.Hour - time.Millisecond)})

	got, _ := s.ListEntries(ctx, ListParams{Days: 7})
	if len(got) != 1 || got[0].Text != "edge" {
		t.Errorf("expected only the entry exactly 7 days old, got %v", got)
	}
}

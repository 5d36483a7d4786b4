package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crispyBCN13/LifeLog/internal/analytics"
	"github.com/crispyBCN13/LifeLog/internal/logging"
)

const barWidth = 24

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show activity counts and the category breakdown",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snap, err := s.Snapshot(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	now := clock()
	st := analytics.ComputeStats(snap.Entries, snap.Categories, now)
	logging.From(cmd.Context()).Debug("stats computed",
		"entries", len(snap.Entries), "categories", len(snap.Categories), "now", now)

	if textFormat() {
		renderStats(cmd.OutOrStdout(), st)
		return
	}
	printJSON(cmd.OutOrStdout(), st)
}

func renderStats(w io.Writer, st analytics.Stats) {
	fmt.Fprintf(w, "Entries in the last 7 days:  %d\n", st.CountLast7)
	fmt.Fprintf(w, "Entries in the last 30 days: %d\n", st.CountLast30)
	fmt.Fprintf(w, "Most active category:  %s\n", describeActive(st.MostActive))
	fmt.Fprintf(w, "Least active category: %s\n", describeActive(st.LeastActive))

	switch {
	case st.NoData:
		return
	case st.NoEntriesYet:
		fmt.Fprintln(w, "\nNo entries yet. Once you start logging, your category breakdown will appear here.")
		return
	}

	fmt.Fprintln(w)
	for _, b := range st.Distribution {
		n := int(b.Fraction*barWidth + 0.5)
		bar := strings.Repeat("█", n) + strings.Repeat(" ", barWidth-n)
		fmt.Fprintf(w, "%s %s: %d log(s)\n", bar, b.Name, b.Count)
	}
}

func describeActive(c *analytics.CategoryCount) string {
	if c == nil {
		return "–"
	}
	if c.Count == 0 {
		return c.Name + " (No logs yet)"
	}
	return fmt.Sprintf("%s (%d log(s))", c.Name, c.Count)
}

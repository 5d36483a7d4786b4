package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crispyBCN13/LifeLog/internal/model"
	"github.com/crispyBCN13/LifeLog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Run:   runList,
	}

	cmd.Flags().StringP("search", "s", "", "Case-insensitive search over text, notes and category")
	cmd.Flags().StringP("category", "c", "", "Filter by category name")
	cmd.Flags().Int("days", 0, "Only entries from the last N days (0 = all time)")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = no limit)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	search, _ := cmd.Flags().GetString("search")
	category, _ := cmd.Flags().GetString("category")
	days, _ := cmd.Flags().GetInt("days")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.ListEntries(cmd.Context(), store.ListParams{
		Search:   search,
		Category: category,
		Days:     days,
		Limit:    limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if !textFormat() {
		printJSON(cmd.OutOrStdout(), entries)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries match your filters yet.")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(cmd.OutOrStdout(), formatEntryLine(e))
	}
}

func formatEntryLine(e model.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  [%s]", e.Timestamp.Local().Format("2006-01-02 15:04"), e.ID, e.Type)
	if e.Category != "" {
		fmt.Fprintf(&b, " (%s)", e.Category)
	}
	b.WriteString(" " + e.Text)
	if e.Notes != "" {
		b.WriteString(" | " + e.Notes)
	}
	if e.ImagePath != "" {
		b.WriteString(" | image: " + e.ImagePath)
	}
	if e.VideoPath != "" {
		b.WriteString(" | video: " + e.VideoPath)
	}
	return b.String()
}

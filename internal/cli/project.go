package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/crispyBCN13/LifeLog/internal/analytics"
	"github.com/crispyBCN13/LifeLog/internal/logging"
)

func init() {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project future activity from the last 30 days",
		Long: "Project future activity from the trailing 30-day rate, scaled by a consistency " +
			"multiplier. Non-numeric or non-positive multipliers count as 1.",
		Run: runProject,
	}

	cmd.Flags().StringP("category", "c", "", "Only count entries in this category")
	cmd.Flags().StringP("multiplier", "m", "", "Consistency multiplier (default: config value, 1.0)")

	RootCmd.AddCommand(cmd)
}

func runProject(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	raw, _ := cmd.Flags().GetString("multiplier")

	multiplier := analytics.NormalizeMultiplier(cfg.Multiplier)
	if cmd.Flags().Changed("multiplier") {
		multiplier = analytics.ParseMultiplier(raw)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snap, err := s.Snapshot(cmd.Context())
	if err != nil {
		exitErr("project", err)
	}

	p := analytics.ComputeProjection(snap.Entries, category, multiplier, clock())
	logging.From(cmd.Context()).Debug("projection computed",
		"category", category, "multiplier", multiplier, "window_count", p.WindowCount)

	if textFormat() {
		renderProjection(cmd.OutOrStdout(), p)
		return
	}

	lines, basis := p.Describe()
	printJSON(cmd.OutOrStdout(), struct {
		analytics.Projection
		Lines []analytics.HorizonLine `json:"lines"`
		Info  string                  `json:"info"`
	}{p, lines, basis})
}

func renderProjection(w io.Writer, p analytics.Projection) {
	lines, basis := p.Describe()
	for _, l := range lines {
		fmt.Fprintf(w, "%8.1f  %s\n", l.Value, l.Description)
	}
	fmt.Fprintln(w, basis)
}

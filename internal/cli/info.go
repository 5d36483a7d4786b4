package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show database statistics",
		Run:   runInfo,
	}

	RootCmd.AddCommand(cmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	info, err := s.Info(cmd.Context(), cfg.DB)
	if err != nil {
		exitErr("info", err)
	}

	if textFormat() {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Database:      %s (%d bytes)\n", info.DBPath, info.DBSizeBytes)
		fmt.Fprintf(w, "Categories:    %d\n", info.Categories)
		fmt.Fprintf(w, "Entries:       %d (%d categorised, %d uncategorised)\n",
			info.Entries, info.Categorised, info.Uncategorised)
		if len(info.OrphanNames) > 0 {
			fmt.Fprintf(w, "Orphaned:      %d entries under %v\n", info.OrphanEntries, info.OrphanNames)
		}
		return
	}
	printJSON(cmd.OutOrStdout(), info)
}

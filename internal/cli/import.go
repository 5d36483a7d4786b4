package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/crispyBCN13/LifeLog/internal/logging"
	"github.com/crispyBCN13/LifeLog/internal/model"
	"github.com/crispyBCN13/LifeLog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a JSON log",
		Long:  "Import categories and entries from JSON (file or stdin). Accepts the output of export and the browser tracker's saved state. Existing ids are skipped.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		exitErr("read input", err)
	}

	var st model.State
	if err := json.Unmarshal(data, &st); err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.Import(cmd.Context(), &st)
	if err != nil {
		exitErr("import", err)
	}
	logging.From(cmd.Context()).Info("import finished",
		"categories", res.Categories, "entries", res.Entries, "skipped", res.Skipped)

	printJSON(cmd.OutOrStdout(), struct {
		OK bool `json:"ok"`
		*store.ImportResult
	}{true, res})
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crispyBCN13/LifeLog/internal/model"
	"github.com/crispyBCN13/LifeLog/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log [text]",
		Short: "Log an entry",
		Long:  "Log an entry. Text can be a positional arg or piped via stdin.",
		Run:   runLog,
	}

	cmd.Flags().StringP("type", "t", model.DefaultEntryType, "Entry type label")
	cmd.Flags().StringP("category", "c", "", "Category name")
	cmd.Flags().StringP("notes", "n", "", "Notes")
	cmd.Flags().String("image", "", "Image path")
	cmd.Flags().String("video", "", "Video path")
	cmd.Flags().String("at", "", "Timestamp (RFC 3339 or YYYY-MM-DD, default: now)")

	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	typ, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	notes, _ := cmd.Flags().GetString("notes")
	image, _ := cmd.Flags().GetString("image")
	video, _ := cmd.Flags().GetString("video")
	at, _ := cmd.Flags().GetString("at")

	text := readText(cmd, args)
	if strings.TrimSpace(text) == "" {
		exitErr("log", fmt.Errorf("text is required (positional arg or stdin)"))
	}

	ts, err := parseAt(at)
	if err != nil {
		exitErr("log", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.AddEntry(cmd.Context(), store.EntryParams{
		Text:      text,
		Type:      typ,
		Category:  category,
		Notes:     notes,
		ImagePath: image,
		VideoPath: video,
		Timestamp: ts,
	})
	if err != nil {
		exitErr("log", err)
	}
	printEntry(cmd, e)
}

// readText takes the positional args, or stdin when it is piped.
func readText(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	stat, err := os.Stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		return ""
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		exitErr("read stdin", err)
	}
	return string(b)
}

func parseAt(s string) (time.Time, error) {
	if s == "" {
		return clock(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: use RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

func printEntry(cmd *cobra.Command, e *model.Entry) {
	if textFormat() {
		fmt.Fprintln(cmd.OutOrStdout(), formatEntryLine(*e))
		return
	}
	printJSON(cmd.OutOrStdout(), e)
}

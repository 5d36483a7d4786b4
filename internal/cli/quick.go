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
		Use:       "quick <note|full|picture|video> <text>",
		Short:     "Quick-add an entry",
		Long:      "Quick-add an entry. Media paths ending in .mp4, .webm or .mov are stored as video, anything else as an image.",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"note", "full", "picture", "video"},
		Run:       runQuick,
	}

	cmd.Flags().StringP("category", "c", "", "Category name")
	cmd.Flags().StringP("media", "m", "", "Image or video path")

	RootCmd.AddCommand(cmd)
}

func runQuick(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	media, _ := cmd.Flags().GetString("media")

	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		exitErr("quick", fmt.Errorf("please write something before saving"))
	}
	image, video := model.SplitMedia(media)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.AddEntry(cmd.Context(), store.EntryParams{
		Text:      text,
		Type:      model.QuickTypeLabel(args[0]),
		Category:  category,
		ImagePath: image,
		VideoPath: video,
		Timestamp: clock(),
	})
	if err != nil {
		exitErr("quick", err)
	}
	printEntry(cmd, e)
}

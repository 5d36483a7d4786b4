package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crispyBCN13/LifeLog/internal/model"
	"github.com/crispyBCN13/LifeLog/internal/store"
)

func init() {
	catCmd := &cobra.Command{
		Use:     "cat",
		Aliases: []string{"category"},
		Short:   "Manage categories",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		Run:   runCatAdd,
	}
	addCmd.Flags().StringP("color", "c", model.DefaultColor, "Hex colour, e.g. #ff0000")

	editCmd := &cobra.Command{
		Use:   "edit <id-or-name>",
		Short: "Rename or recolour a category",
		Long:  "Rename or recolour a category. Entries keep the old name, so rename before logging under the new one.",
		Args:  cobra.ExactArgs(1),
		Run:   runCatEdit,
	}
	editCmd.Flags().String("name", "", "New name (blank keeps the current one)")
	editCmd.Flags().StringP("color", "c", "", "New hex colour")

	rmCmd := &cobra.Command{
		Use:   "rm <id-or-name>",
		Short: "Delete a category and unlink its entries",
		Args:  cobra.ExactArgs(1),
		Run:   runCatRm,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Run:   runCatList,
	}

	catCmd.AddCommand(addCmd, editCmd, rmCmd, listCmd)
	RootCmd.AddCommand(catCmd)
}

func runCatAdd(cmd *cobra.Command, args []string) {
	color, _ := cmd.Flags().GetString("color")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cat, err := s.AddCategory(cmd.Context(), store.CategoryParams{Name: args[0], Color: color})
	if err != nil {
		exitErr("add category", err)
	}
	printCategory(cmd, cat)
}

func runCatEdit(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cat, err := s.EditCategory(cmd.Context(), store.EditCategoryParams{Ref: args[0], Name: name, Color: color})
	if err != nil {
		exitErr("edit category", err)
	}
	printCategory(cmd, cat)
}

func runCatRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cat, err := s.DeleteCategory(cmd.Context(), args[0])
	if err != nil {
		exitErr("delete category", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"name":%q}`+"\n", cat.ID, cat.Name)
}

func runCatList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cats, err := s.ListCategories(cmd.Context())
	if err != nil {
		exitErr("list categories", err)
	}

	if textFormat() {
		for _, c := range cats {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", c.ID, c.Color, c.Name)
		}
		return
	}
	printJSON(cmd.OutOrStdout(), cats)
}

func printCategory(cmd *cobra.Command, c *model.Category) {
	if textFormat() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", c.ID, c.Color, c.Name)
		return
	}
	printJSON(cmd.OutOrStdout(), c)
}

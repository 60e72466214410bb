package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkempf/kontoflow/internal/cli"
	"github.com/mkempf/kontoflow/internal/report"
	"github.com/mkempf/kontoflow/internal/session"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, create, update, and delete the categories used for rule-based classification.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(createCategoryCmd())
	cmd.AddCommand(showCategoryCmd())
	cmd.AddCommand(renameCategoryCmd())
	cmd.AddCommand(recolorCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())
	cmd.AddCommand(addRuleCmd())
	cmd.AddCommand(removeRuleCmd())
	cmd.AddCommand(assignGroupCmd())
	cmd.AddCommand(unassignGroupCmd())
	cmd.AddCommand(toggleGroupDisplayCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			categories := s.Categories()
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories yet. Use 'kontoflow categories create' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Group"),
				cli.HeaderStyle.Render("Rules"),
				cli.HeaderStyle.Render("Flags"))

			for _, cat := range categories {
				groupName := ""
				if cat.GroupID != nil {
					if grp, err := s.Group(*cat.GroupID); err == nil {
						groupName = grp.Name
					}
				}
				flags := ""
				if cat.ShowUpAsGroup {
					flags = "show-as-group"
				}
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n",
					cat.ID,
					cli.FormatSwatch(cat.Color),
					cat.Name,
					groupName,
					strings.Join(cat.Rules, ", "),
					cli.SubtleStyle.Render(flags))
			}

			uncategorized := 0
			for _, trx := range s.Transactions() {
				if trx.CategoryID == nil {
					uncategorized++
				}
			}
			if uncategorized > 0 {
				fmt.Fprintf(w, "\t%s\t\t\t\n",
					cli.SubtleStyle.Render(fmt.Sprintf("(%d transactions uncategorized)", uncategorized)))
			}

			return nil
		},
	}
}

func createCategoryCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			if color == "" {
				color = viper.GetString("defaults.category_color")
			}
			cat := s.CreateCategory(args[0], color)
			if err := saveTaxonomy(s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category %q created with id %d", cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	return cmd
}

func showCategoryCmd() *cobra.Command {
	var sortMode string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a category's transactions and sums",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0], "category")
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			cat, err := s.Category(id)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %s", cli.FormatSwatch(cat.Color), cat.Name)))

			rows := make([]transactionRow, 0)
			for idx, trx := range s.Transactions() {
				if trx.CategoryID != nil && *trx.CategoryID == id {
					rows = append(rows, transactionRow{position: idx, trx: trx})
				}
			}
			sortTransactionRows(rows, sortMode)
			printTransactionRows(s, rows)

			printCategoryStats(s, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortMode, "sort", "lowest", "sort order (lowest, highest, latest, oldest)")
	return cmd
}

func printCategoryStats(s *session.Session, categoryID int) {
	st := report.Stats(s, &categoryID)

	fmt.Println()
	fmt.Printf("  Total:            %s\n", cli.FormatAmount(st.TotalOverall))
	fmt.Printf("  Excluding lists:  %s\n", cli.FormatAmount(st.TotalExcludingLists))
	fmt.Printf("  In lists:         %s\n", cli.FormatAmount(st.TotalListItems))
	fmt.Printf("  Refundable:       %s\n", cli.FormatAmount(st.RefundableSum))
	fmt.Printf("  After refund:     %s\n", cli.FormatAmount(st.AfterRefund))
}

func renameCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateCategory(args[0], func(s *session.Session, id int) error {
				return s.RenameCategory(id, args[1])
			}, fmt.Sprintf("Category renamed to %q", args[1]))
		},
	}
}

func recolorCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <id> <hex-color>",
		Short: "Change a category's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateCategory(args[0], func(s *session.Session, id int) error {
				return s.RecolorCategory(id, args[1])
			}, fmt.Sprintf("Category color set to %s", args[1]))
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Delete a category. Transactions assigned to it become uncategorized.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateCategory(args[0], func(s *session.Session, id int) error {
				return s.DeleteCategory(id)
			}, "Category deleted")
		},
	}
}

func addRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-rule <id> <rule>",
		Short: "Add a substring rule to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateCategory(args[0], func(s *session.Session, id int) error {
				return s.AddRule(id, args[1])
			}, fmt.Sprintf("Rule %q added", args[1]))
		},
	}
}

func removeRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-rule <id> <rule>",
		Short: "Remove a rule from a category",
		Long:  `Remove every occurrence of the exact rule string from the category.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateCategory(args[0], func(s *session.Session, id int) error {
				return s.RemoveRule(id, args[1])
			}, fmt.Sprintf("Rule %q removed", args[1]))
		},
	}
}

func assignGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group <id> <group-id>",
		Short: "Put a category into a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			groupID, err := parseID(args[1], "group")
			if err != nil {
				return err
			}
			return mutateCategory(args[0], func(s *session.Session, id int) error {
				return s.AssignGroup(id, groupID)
			}, fmt.Sprintf("Category assigned to group %d", groupID))
		},
	}
}

func unassignGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ungroup <id>",
		Short: "Remove a category from its group",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateCategory(args[0], func(s *session.Session, id int) error {
				return s.UnassignGroup(id)
			}, "Category removed from its group")
		},
	}
}

func toggleGroupDisplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-group-display <id>",
		Short: "Toggle showing a category as its own pseudo-group in reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0], "category")
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			enabled, err := s.ToggleShowAsGroup(id)
			if err != nil {
				return err
			}
			if err := saveTaxonomy(s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category %d show-as-group: %t", id, enabled)))
			return nil
		},
	}
}

// mutateCategory runs one registry mutation against a fresh session and
// persists the taxonomy afterwards.
func mutateCategory(idArg string, op func(*session.Session, int) error, success string) error {
	id, err := parseID(idArg, "category")
	if err != nil {
		return err
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	if err := op(s, id); err != nil {
		return err
	}
	if err := saveTaxonomy(s); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(success))
	return nil
}

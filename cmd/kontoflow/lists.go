package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkempf/kontoflow/internal/cli"
	"github.com/mkempf/kontoflow/internal/common"
	"github.com/mkempf/kontoflow/internal/session"
)

func listsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage ad-hoc transaction lists",
		Long: `Lists are arbitrary named subsets of transactions, e.g. "refundable" or
"shared flat". A list flagged as refund list reduces the after-refund
totals in the reports.`,
	}

	cmd.AddCommand(listListsCmd())
	cmd.AddCommand(createListCmd())
	cmd.AddCommand(showListCmd())
	cmd.AddCommand(renameListCmd())
	cmd.AddCommand(recolorListCmd())
	cmd.AddCommand(toggleRefundCmd())
	cmd.AddCommand(deleteListCmd())
	cmd.AddCommand(addToListCmd())
	cmd.AddCommand(removeFromListCmd())

	return cmd
}

func listListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all lists",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			lists := s.Lists()
			if len(lists) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No lists yet. Use 'kontoflow lists create' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Members"),
				cli.HeaderStyle.Render("Flags"))

			for _, lst := range lists {
				flags := ""
				if lst.RefundList {
					flags = "refund"
				}
				if lst.ListAsCat {
					if flags != "" {
						flags += ", "
					}
					flags += "as-category"
				}
				fmt.Fprintf(w, "%d\t%s %s\t%d\t%s\n",
					lst.ID,
					cli.FormatSwatch(lst.Color),
					lst.Name,
					len(lst.TransactionIDs),
					cli.SubtleStyle.Render(flags))
			}

			return nil
		},
	}
}

func createListCmd() *cobra.Command {
	var (
		color      string
		refundList bool
		asCategory bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new list",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			if color == "" {
				color = viper.GetString("defaults.list_color")
			}
			lst := s.CreateList(args[0], color, refundList, asCategory)
			if err := saveTaxonomy(s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("List %q created with id %d", lst.Name, lst.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	cmd.Flags().BoolVar(&refundList, "refund", false, "members count as refundable")
	cmd.Flags().BoolVar(&asCategory, "as-category", false, "reserved: treat the list as a category in stats")
	return cmd
}

func showListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a list's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0], "list")
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			lst, err := s.List(id)
			if err != nil {
				return err
			}

			title := lst.Name
			if lst.RefundList {
				title += " (refund list)"
			}
			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %s", cli.FormatSwatch(lst.Color), title)))

			rows := make([]transactionRow, 0, len(lst.TransactionIDs))
			total := 0.0
			for _, pos := range lst.TransactionIDs {
				trx, err := s.Transaction(pos)
				if err != nil {
					continue
				}
				rows = append(rows, transactionRow{position: pos, trx: *trx})
				total += trx.Amount
			}
			printTransactionRows(s, rows)
			fmt.Printf("\n  List total: %s\n", cli.FormatAmount(total))
			return nil
		},
	}
}

func renameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateList(args[0], func(s *session.Session, id int) error {
				return s.RenameList(id, args[1])
			}, fmt.Sprintf("List renamed to %q", args[1]))
		},
	}
}

func recolorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <id> <hex-color>",
		Short: "Change a list's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateList(args[0], func(s *session.Session, id int) error {
				return s.RecolorList(id, args[1])
			}, fmt.Sprintf("List color set to %s", args[1]))
		},
	}
}

func toggleRefundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-refund <id>",
		Short: "Toggle a list's refund flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0], "list")
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			refund, err := s.ToggleRefund(id)
			if err != nil {
				return err
			}
			if err := saveTaxonomy(s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("List %d refund flag: %t", id, refund)))
			return nil
		},
	}
}

func deleteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a list",
		Long:  `Delete a list. Its membership is discarded; the transactions are unaffected.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateList(args[0], func(s *session.Session, id int) error {
				return s.DeleteList(id)
			}, "List deleted")
		},
	}
}

func addToListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <id> <position>",
		Short: "Add a transaction to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0], "list")
			if err != nil {
				return err
			}
			position, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			switch err := s.AddToList(position, id); {
			case errors.Is(err, common.ErrAlreadyMember):
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Transaction %d is already in the list", position)))
				return nil
			case err != nil:
				return err
			}

			if err := saveTaxonomy(s); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction %d added to list %d", position, id)))
			return nil
		},
	}
}

func removeFromListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id> <position>",
		Short: "Remove a transaction from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0], "list")
			if err != nil {
				return err
			}
			position, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			switch err := s.RemoveFromList(position, id); {
			case errors.Is(err, common.ErrNotMember):
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Transaction %d is not in the list", position)))
				return nil
			case err != nil:
				return err
			}

			if err := saveTaxonomy(s); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction %d removed from list %d", position, id)))
			return nil
		},
	}
}

func mutateList(idArg string, op func(*session.Session, int) error, success string) error {
	id, err := parseID(idArg, "list")
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

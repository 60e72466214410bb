package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkempf/kontoflow/internal/cli"
)

func assignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <position> <category-id>",
		Short: "Assign a category to a transaction",
		Long: `Set the category of the transaction at the given store position.

Assignments are rule-derived on every load; a manual assignment holds for
this invocation's output but is overwritten the next time classification
runs over the statement files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			categoryID, err := parseID(args[1], "category")
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			if err := s.AssignCategory(position, categoryID); err != nil {
				return err
			}

			trx, _ := s.Transaction(position)
			name, _ := categoryLabel(s, trx)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Transaction %d (%s, %s) assigned to %q",
				position, trx.BookingText, cli.FormatAmount(trx.Amount), name)))
			return nil
		},
	}
}

func unassignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <position>",
		Short: "Clear a transaction's category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			if err := s.UnassignCategory(position); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction %d unassigned", position)))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkempf/kontoflow/internal/cli"
	"github.com/mkempf/kontoflow/internal/model"
	"github.com/mkempf/kontoflow/internal/report"
	"github.com/mkempf/kontoflow/internal/session"
)

func transactionsCmd() *cobra.Command {
	var sortMode string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List all transactions",
		Long:  `Display every loaded transaction with its position, category, and amount.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			rows := make([]transactionRow, 0, s.TransactionCount())
			for idx, trx := range s.Transactions() {
				rows = append(rows, transactionRow{position: idx, trx: trx})
			}
			sortTransactionRows(rows, sortMode)

			printTransactionRows(s, rows)
			printGlobalSummary(s)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortMode, "sort", "lowest", "sort order (lowest, highest, latest, oldest)")
	return cmd
}

type transactionRow struct {
	trx      model.Transaction
	position int
}

// sortTransactionRows orders rows by amount or booking date. Dates are
// parsed as YYYY-MM-DD; unparseable dates sort as the zero time, matching
// how partially localized exports behave.
func sortTransactionRows(rows []transactionRow, mode string) {
	switch mode {
	case "highest":
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].trx.Amount > rows[j].trx.Amount
		})
	case "latest":
		sort.SliceStable(rows, func(i, j int) bool {
			return bookingTime(rows[i].trx.BookingDate).After(bookingTime(rows[j].trx.BookingDate))
		})
	case "oldest":
		sort.SliceStable(rows, func(i, j int) bool {
			return bookingTime(rows[i].trx.BookingDate).Before(bookingTime(rows[j].trx.BookingDate))
		})
	default: // lowest
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].trx.Amount < rows[j].trx.Amount
		})
	}
}

func bookingTime(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func printTransactionRows(s *session.Session, rows []transactionRow) {
	if len(rows) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions loaded. Configure statement files first."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Pos"),
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Booking"),
		cli.HeaderStyle.Render("Partner"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Category"))

	for _, row := range rows {
		name, color := categoryLabel(s, &row.trx)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s %s\n",
			row.position,
			row.trx.BookingDate,
			row.trx.BookingText,
			row.trx.PartnerName,
			cli.FormatAmount(row.trx.Amount),
			cli.FormatSwatch(color),
			name)
	}
}

func printGlobalSummary(s *session.Session) {
	total, refundable, afterRefund := report.GlobalExpenses(s)
	income := report.GlobalIncome(s)

	fmt.Println()
	fmt.Println(cli.FormatTitle("Totals"))
	fmt.Printf("  Expenses:      %s\n", cli.FormatAmount(total))
	fmt.Printf("  Refundable:    %s\n", cli.FormatAmount(refundable))
	fmt.Printf("  After refund:  %s\n", cli.FormatAmount(afterRefund))
	fmt.Printf("  Income:        %s\n", cli.FormatAmount(income))
}

func categoryLabel(s *session.Session, trx *model.Transaction) (string, string) {
	if trx.CategoryID == nil {
		return model.UnassignedName, model.UnassignedColor
	}
	cat, err := s.Category(*trx.CategoryID)
	if err != nil {
		return model.UnassignedName, model.UnassignedColor
	}
	return cat.Name, cat.Color
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mkempf/kontoflow/internal/cli"
	"github.com/mkempf/kontoflow/internal/report"
)

func statsCmd() *cobra.Command {
	var sortMode string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show spending statistics by category and group",
		RunE: func(_ *cobra.Command, _ []string) error {
			mode, err := report.ParseSortMode(sortMode)
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			printGlobalSummary(s)

			fmt.Println()
			fmt.Println(cli.FormatTitle("By category"))
			printReportTable(toRows(report.CategoryReport(s, mode)))

			groupRows := groupReportRows(report.GroupReport(s, mode))
			if len(groupRows) > 0 {
				fmt.Println()
				fmt.Println(cli.FormatTitle("By group"))
				printReportTable(groupRows)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sortMode, "sort", "lowest", "sort order (lowest, highest, most, least)")
	return cmd
}

type reportRow struct {
	name    string
	color   string
	amount  float64
	count   int
	percent float64
}

func toRows(entries []report.Entry) []reportRow {
	rows := make([]reportRow, len(entries))
	for i, e := range entries {
		rows[i] = reportRow{
			name:    e.Name,
			color:   e.Color,
			amount:  e.Amount,
			count:   e.Count,
			percent: e.Percent,
		}
	}
	return rows
}

func groupReportRows(entries []report.GroupEntry) []reportRow {
	rows := make([]reportRow, len(entries))
	for i, e := range entries {
		rows[i] = reportRow{
			name:    e.Name,
			color:   e.Color,
			amount:  e.Amount,
			count:   e.Count,
			percent: e.Percent,
		}
	}
	return rows
}

func printReportTable(rows []reportRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Name"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Count"),
		cli.HeaderStyle.Render("Share"))

	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\t%s\t%d\t%s\n",
			cli.FormatSwatch(row.color),
			row.name,
			cli.FormatAmount(row.amount),
			row.count,
			cli.FormatPercent(row.percent))
	}
}

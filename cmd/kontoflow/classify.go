package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mkempf/kontoflow/internal/cli"
	"github.com/mkempf/kontoflow/internal/engine"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Re-run rule classification over all transactions",
		Long: `Apply the current category rules to every transaction, overwriting any
existing assignment. Manual assignments are not protected: a transaction
that matches a rule is reassigned to the matching category.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(s.TransactionCount(),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Classifying transactions..."),
			)

			categories := s.Categories()
			transactions := s.Transactions()
			matched := 0
			for i := range transactions {
				transactions[i].CategoryID = engine.Classify(&transactions[i], categories)
				if transactions[i].CategoryID != nil {
					matched++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			rules := 0
			for _, cat := range categories {
				rules += len(cat.Rules)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Classified %d of %d transactions (%d rules across %d categories)",
				matched, len(transactions), rules, len(categories))))
			return nil
		},
	}
}

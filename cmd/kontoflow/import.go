package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkempf/kontoflow/internal/archive"
	"github.com/mkempf/kontoflow/internal/cli"
	"github.com/mkempf/kontoflow/internal/engine"
)

func importCmd() *cobra.Command {
	var reclassify bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a taxonomy document",
		Long: `Replace the current categories, groups, and lists with the document's
collections. List membership keys are matched against the loaded
transactions; keys with no matching transaction are dropped. Transactions
whose category no longer exists become uncategorized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			doc, err := archive.Parse(data)
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			archive.Import(s, doc)
			if reclassify {
				engine.ReclassifyAll(s)
			}
			if err := saveTaxonomy(s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported %d categories, %d groups, %d lists",
				len(s.Categories()), len(s.Groups()), len(s.Lists()))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reclassify, "reclassify", false, "re-run classification with the imported rules")
	return cmd
}

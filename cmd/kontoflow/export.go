package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkempf/kontoflow/internal/archive"
	"github.com/mkempf/kontoflow/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the taxonomy as a JSON document",
		Long: `Write categories, groups, and lists to a JSON document. List membership
is exported as (booking date, booking text, amount) keys, so the document
can be re-imported against a freshly loaded transaction store.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			data, err := archive.Export(s).Marshal()
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write export to %s: %w", output, err)
			}
			fmt.Println(cli.FormatSuccess("Taxonomy exported to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

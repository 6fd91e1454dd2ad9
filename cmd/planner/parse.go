package main

import (
	"fmt"
	"os"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/importer"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newParseCmd(a *app) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Convert a copied course listing into CSV rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			courses := importer.ParseListing(string(data))

			created, err := importer.AppendListingCSV(out, courses)
			if err != nil {
				return err
			}
			a.log.Debug("listing parsed",
				zap.String(constvars.LoggingFileKey, in),
				zap.Int(constvars.LoggingCountKey, len(courses)),
			)

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Data successfully processed and saved to '%s'.\n", out)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Data successfully processed and appended to '%s'.\n", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", a.internalConfig.Planner.ListingInputFile, "listing text file")
	cmd.Flags().StringVar(&out, "out", a.internalConfig.Planner.ListingOutputFile, "CSV file to create or append to")
	return cmd
}

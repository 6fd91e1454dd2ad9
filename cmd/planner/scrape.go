package main

import (
	"fmt"
	"io"
	"os"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/importer"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScrapeCmd(a *app) *cobra.Command {
	var out string
	var text bool

	cmd := &cobra.Command{
		Use:   "scrape <page.html>",
		Short: "Export the course rows of a saved registration page",
		Long: `Reads a saved registration page and writes its course rows in the
positional export format. With --text the visible page text is printed
instead, ready to be fed to the parse command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var payload string
			if text {
				payload, err = importer.ExtractPageText(f)
				if err != nil {
					return err
				}
			} else {
				classes, err := importer.ParseRegistrationPage(f)
				if err != nil {
					return err
				}
				a.log.Debug("registration page scraped",
					zap.String(constvars.LoggingFileKey, args[0]),
					zap.Int(constvars.LoggingCountKey, len(classes)),
				)
				data, err := json.MarshalIndent(classes, "", "  ")
				if err != nil {
					return err
				}
				payload = string(data) + "\n"
			}

			return writeOutput(cmd.OutOrStdout(), out, payload)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write, stdout when empty")
	cmd.Flags().BoolVar(&text, "text", false, "print the page text instead of course rows")
	return cmd
}

func writeOutput(stdout io.Writer, path, payload string) error {
	if path == "" {
		_, err := io.WriteString(stdout, payload)
		return err
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved to '%s'\n", path)
	return nil
}

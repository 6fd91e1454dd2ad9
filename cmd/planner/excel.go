package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/importer"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var errNoSheets = errors.New("no sheets found or unable to load workbook")

func newExcelCmd(a *app) *cobra.Command {
	var sheet, dir string

	cmd := &cobra.Command{
		Use:   "excel [file]",
		Short: "Print the courses of a registration workbook as JSON",
		Long: `Reads one sheet of an exported registration workbook and prints its rows
as course records. Without a file argument the workbooks in --dir are
offered for selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				picked, err := pickWorkbook(p, dir)
				if err != nil {
					return err
				}
				path = picked
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("file not found: %w", err)
			}

			if sheet == "" {
				names, err := importer.SheetNames(path)
				if err != nil {
					return err
				}
				if len(names) == 0 {
					return errNoSheets
				}
				i, err := p.choose("Available sheets:", names, "Select a sheet by number: ")
				if err != nil {
					return err
				}
				sheet = names[i]
			}

			courses, err := importer.ReadWorkbook(path, sheet)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(courses, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to read, prompted for when empty")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory searched for workbooks")
	return cmd
}

func pickWorkbook(p *prompter, dir string) (string, error) {
	files, err := filesWithExt(dir, ".xlsx", ".xls")
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	if len(files) == 0 {
		return p.ask("No Excel files found in the current directory. Enter the path to the Excel file: ")
	}

	options := append(append([]string{}, files...), "Select path manually")
	i, err := p.choose("Excel files found in the current directory:", options, "Choose an option (enter the number): ")
	if err != nil {
		return "", err
	}
	if i == len(files) {
		return p.ask("Enter the path to the Excel file: ")
	}
	return filepath.Join(dir, files[i]), nil
}

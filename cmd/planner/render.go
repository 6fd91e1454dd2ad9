package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/timetable"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const (
	formatText  = "text"
	formatBoard = "board"
	formatPNG   = "png"
)

func newRenderCmd(a *app) *cobra.Command {
	var format, out, dir string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a timetable from a selected-courses file",
		Long: `Reads a {"selected_courses": [...]} file and draws the week as text, a
board or a PNG image. Without a file argument the JSON files in --dir are
offered for selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				files, err := filesWithExt(dir, ".json")
				if err != nil && !os.IsNotExist(err) {
					return err
				}
				if len(files) == 0 {
					return fmt.Errorf("no JSON files found in %s", dir)
				}
				p := newPrompter(cmd.InOrStdin(), stdout)
				i, err := p.choose("Available JSON files:", files, "Enter the number of the file you want to use: ")
				if err != nil {
					return err
				}
				path = filepath.Join(dir, files[i])
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var selected models.SelectedCourses
			if err := json.Unmarshal(data, &selected); err != nil {
				return err
			}

			switch format {
			case formatPNG:
				if err := timetable.SaveImage(selected, out); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "Timetable has been saved as '%s'\n", out)
			case formatBoard, formatText:
				idx, problems := timetable.IndexSelected(selected)
				for _, problem := range problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "Skipped schedule of %s\n", problem.Error())
				}
				if format == formatBoard {
					fmt.Fprintln(stdout, timetable.RenderBoard(idx))
					return nil
				}
				fmt.Fprint(stdout, timetable.RenderText(idx))
			default:
				return fmt.Errorf("unknown format %q, want text, board or png", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatPNG, "output format: text, board or png")
	cmd.Flags().StringVar(&out, "out", a.internalConfig.Planner.TimetableImage, "image path for the png format")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory searched for selected-courses files")
	return cmd
}

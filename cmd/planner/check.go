package main

import (
	"context"
	"fmt"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/timetable"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/coursestore"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var board bool

	cmd := &cobra.Command{
		Use:   "check [targetFile]",
		Short: "List candidate courses that fit the committed week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.internalConfig.Planner.CandidatesFile
			if len(args) == 1 {
				target = args[0]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Reading data from %s\n", target)

			return a.logged(cmd, "planner.check", func(ctx context.Context) error {
				usecase, release, err := a.newPlanner(ctx)
				if err != nil {
					return err
				}
				defer release()

				candidates, err := coursestore.OpenFile(target).Load(ctx)
				if err != nil {
					return err
				}
				report, err := usecase.FindFitting(ctx, candidates)
				if err != nil {
					return err
				}

				for _, problem := range report.Problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "Skipped schedule of %s\n", problem.Error())
				}
				fmt.Fprint(out, timetable.RenderFound(report.Fitting))
				if board {
					fmt.Fprintln(out, timetable.RenderBoard(report.Index))
					return nil
				}
				fmt.Fprint(out, timetable.RenderText(report.Index))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&board, "board", false, "draw the committed week as a board")
	return cmd
}

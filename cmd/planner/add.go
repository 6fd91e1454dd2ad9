package main

import (
	"context"
	"fmt"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/coursestore"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add <section> <classDataFile>",
		Short: "Commit a course section from a candidate file",
		Long: `Looks the section up in the candidate file and appends it to the committed
list. The section is refused when it overlaps a committed course, unless
--force is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, dataFile := args[0], args[1]

			return a.logged(cmd, "planner.add", func(ctx context.Context) error {
				usecase, release, err := a.newPlanner(ctx)
				if err != nil {
					return err
				}
				defer release()

				pool, err := coursestore.OpenFile(dataFile).Load(ctx)
				if err != nil {
					return err
				}
				if _, err := usecase.AddCourse(ctx, section, pool, force); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Class with code %s has been successfully added.\n", section)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "commit even when the section overlaps the committed week")
	return cmd
}

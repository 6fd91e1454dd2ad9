package main

import (
	"context"
	"errors"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"
	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/drivers/logger"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/planner"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/coursestore"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/locker"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/notifier"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	internalConfig *config.InternalConfig
	driverConfig   *config.DriverConfig
	log            *zap.Logger
	logLevel       string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "planner",
		Short: "Ders Control - weekly course schedule planner",
		Long: `Ders Control keeps a list of committed courses and finds the candidate
courses that still fit the week without overlapping any of them.

The committed list lives in the store chosen by PLANNER_STORE_DRIVER
(json, csv, minio, mongo or redis).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			log, err := logger.NewCLILogger(a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", a.driverConfig.Logger.Level, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.internalConfig.Planner.CommittedFile, "committed", a.internalConfig.Planner.CommittedFile, "committed course file for the json and csv stores")
	root.PersistentFlags().StringVar(&a.internalConfig.Planner.StoreDriver, "store", a.internalConfig.Planner.StoreDriver, "committed course store driver")

	root.AddCommand(
		newCheckCmd(a),
		newAddCmd(a),
		newParseCmd(a),
		newExcelCmd(a),
		newScrapeCmd(a),
		newRenderCmd(a),
		newVersionCmd(),
	)
	return root
}

// withRequestID tags a command run so its log lines can be correlated.
func withRequestID(ctx context.Context) (context.Context, string) {
	requestID := utils.GenerateRequestID()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}

// logged runs fn as one timed operation under a fresh request ID.
func (a *app) logged(cmd *cobra.Command, operation string, fn func(ctx context.Context) error) error {
	ctx, requestID := withRequestID(cmd.Context())
	return utils.LogOperation(a.log, operation, requestID, func() error {
		return fn(ctx)
	})
}

// newPlanner opens the configured store and notifier. The returned func
// releases both.
func (a *app) newPlanner(ctx context.Context) (contracts.PlannerUsecase, func(), error) {
	store, closeStore, err := coursestore.New(ctx, a.internalConfig, a.driverConfig)
	if err != nil {
		return nil, nil, err
	}
	commitNotifier, closeNotifier, err := notifier.New(a.log, a.internalConfig, a.driverConfig)
	if err != nil {
		closeStore(ctx)
		return nil, nil, err
	}
	commitLocker, closeLocker, err := locker.New(ctx, a.log, a.internalConfig, a.driverConfig)
	if err != nil {
		closeNotifier(ctx)
		closeStore(ctx)
		return nil, nil, err
	}

	release := func() {
		if err := closeLocker(context.Background()); err != nil {
			a.log.Warn("closing commit locker failed", zap.Error(err))
		}
		if err := closeNotifier(context.Background()); err != nil {
			a.log.Warn("closing commit notifier failed", zap.Error(err))
		}
		if err := closeStore(context.Background()); err != nil {
			a.log.Warn("closing course store failed", zap.Error(err))
		}
	}
	return planner.NewPlannerUsecase(store, commitNotifier, commitLocker, a.log), release, nil
}

// errorMessage renders err for the terminal.
func errorMessage(err error) string {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return err.Error()
	}
	if customErr.DevMessage == "" {
		return customErr.ClientMessage
	}
	return customErr.ClientMessage + " (" + customErr.DevMessage + ")"
}

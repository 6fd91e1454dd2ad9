package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// Closers release store and broker clients, last opened first.
	Closers []func(context.Context) error
}

func (b *Bootstrap) AddCloser(name string, closer func(context.Context) error) {
	b.Closers = append(b.Closers, func(ctx context.Context) error {
		if err := closer(ctx); err != nil {
			return err
		}
		b.Logger.Info("Successfully closed " + name)
		return nil
	})
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var firstErr error
	for i := len(b.Closers) - 1; i >= 0; i-- {
		if err := b.Closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	// Sync fails on terminals; nothing useful can be done about it here.
	_ = b.Logger.Sync()
	return firstErr
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/controllers"
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/middlewares"
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/routers"
	"github.com/OzanKutlar/Ders-Control/internal/app/drivers/logger"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/classfiles"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/planner"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/coursestore"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/locker"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/notifier"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Error while bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening",
			zap.String("address", internalConfig.App.Address+internalConfig.App.Port),
			zap.String("version", internalConfig.App.Version),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Committed course store
	store, closeStore, err := coursestore.New(ctx, bootstrap.InternalConfig, bootstrap.DriverConfig)
	if err != nil {
		return err
	}
	bootstrap.AddCloser("course store", closeStore)
	bootstrap.Logger.Info("Course store ready",
		zap.String(constvars.LoggingStoreDriverKey, bootstrap.InternalConfig.Planner.StoreDriver),
	)

	// Commit notifications
	commitNotifier, closeNotifier, err := notifier.New(bootstrap.Logger, bootstrap.InternalConfig, bootstrap.DriverConfig)
	if err != nil {
		return err
	}
	bootstrap.AddCloser("commit notifier", closeNotifier)

	// Commit lock
	commitLocker, closeLocker, err := locker.New(ctx, bootstrap.Logger, bootstrap.InternalConfig, bootstrap.DriverConfig)
	if err != nil {
		return err
	}
	bootstrap.AddCloser("commit locker", closeLocker)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Planner
	plannerUsecase := planner.NewPlannerUsecase(store, commitNotifier, commitLocker, bootstrap.Logger)
	plannerController := controllers.NewPlannerController(bootstrap.Logger, plannerUsecase)

	// Class files
	classFileUsecase := classfiles.NewClassFileUsecase(bootstrap.InternalConfig.Planner.DownloadsDir, bootstrap.Logger)
	classFileController := controllers.NewClassFileController(bootstrap.Logger, classFileUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, plannerController, classFileController)
	return nil
}

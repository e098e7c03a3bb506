package main

import (
	"context"
	"errors"
	"net/http"

	"countervalidator/internal/account"
	"countervalidator/internal/api"
	"countervalidator/internal/api/handler/v1handler"
	"countervalidator/internal/config"
	"countervalidator/internal/notify"
	"countervalidator/internal/registry"
	"countervalidator/internal/validator"
	"countervalidator/internal/worker"
	"countervalidator/pkg/filestore"
	"countervalidator/pkg/filestore/gcs"
	"countervalidator/pkg/filestore/local"
	"countervalidator/pkg/hashing"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/mailer"
	"countervalidator/pkg/modulelock"
	registryclient "countervalidator/pkg/registry"
	"countervalidator/pkg/storage"
	"countervalidator/pkg/validationmodule/c5tools"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getRedis connects to the redis instance holding validation module locks.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return client, func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func getFileStore(ctx context.Context, cfg *config.Config) filestore.Store {
	switch cfg.FileStore.Backend {
	case "gcs":
		store, err := gcs.New(ctx, cfg.FileStore.GCSBucket, cfg.FileStore.GCSCredentialsJSON, cfg.FileStore.PublicURL)
		if err != nil {
			logger.Fatal(ctx, "could not create gcs file store", zap.Error(err))
		}

		return store
	case "local", "":
		return local.New(cfg.FileStore.LocalRoot, cfg.FileStore.PublicURL)
	default:
		logger.Fatal(ctx, "unknown file store backend", zap.String("backend", cfg.FileStore.Backend))

		return nil
	}
}

func getMailer(cfg *config.Config) mailer.Mailer {
	return mailer.New(mailer.Options{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		User:     cfg.Mail.User,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		StartTLS: cfg.Mail.StartTLS,
	})
}

func getModuleClient(cfg *config.Config) *c5tools.Client {
	return c5tools.New(&http.Client{}, c5tools.Options{
		RequestTimeout: cfg.ValidationModules.RequestTimeout,
		Breaker: c5tools.BreakerOptions{
			ConsecutiveFailures: cfg.ValidationModules.BreakerFailures,
			OpenTimeout:         cfg.ValidationModules.BreakerTimeout,
		},
	})
}

type services struct {
	accounts  account.Service
	registry  registry.Service
	notify    notify.Service
	validator validator.Service
}

func setupServices(ctx context.Context, cfg *config.Config, strg storage.Storage, redisClient redis.UniversalClient) services {
	accounts, err := account.New(strg, account.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create account service", zap.Error(err))
	}

	locker := modulelock.New(redisClient, modulelock.Options{
		URLs:         cfg.ValidationModules.URLs,
		TTL:          cfg.ValidationModules.LockTimeout,
		PollInterval: cfg.ValidationModules.PollInterval,
	})

	return services{
		accounts: accounts,
		registry: registry.New(strg, registryclient.New(&http.Client{Timeout: cfg.Registry.Timeout}, cfg.Registry.URL)),
		notify:   notify.New(strg, getMailer(cfg), notify.NewOptions(cfg)),
		validator: validator.New(validator.Deps{
			Storage: strg,
			Files:   getFileStore(ctx, cfg),
			Hasher:  hashing.New(cfg.Validation.HashingSalt, cfg.Validation.HashingDigestSize),
			Locker:  locker,
			Modules: getModuleClient(cfg),
		}, validator.NewOptions(cfg)),
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			svc := setupServices(ctx, cfg, strg, redisClient)

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
				Validator: svc.validator,
				Registry:  svc.registry,
				Notify:    svc.notify,
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Account:        svc.accounts,
				Registry:       svc.registry,
				Validator:      svc.validator,
				MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}
		},
	}

	return cmd
}

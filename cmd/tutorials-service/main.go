package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tutorialhub/tutorials-service/internal/config"
	"github.com/tutorialhub/tutorials-service/internal/handlers"
	"github.com/tutorialhub/tutorials-service/internal/server"
	"github.com/tutorialhub/tutorials-service/internal/services"
	"github.com/tutorialhub/tutorials-service/internal/store"
	"github.com/tutorialhub/tutorials-service/internal/store/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tutorials-service",
		Short:         "CRUD REST service for tutorial records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cobrautil.IsBuiltinCommand(cmd) {
				return nil
			}
			return cobrautil.SyncViperPreRunE("tutorials")(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	registerFlags(cmd.Flags())
	return cmd
}

// registerFlags defines one flag per configuration value; flag defaults come
// from the config struct defaults so the environment, flags, and struct stay
// in agreement.
func registerFlags(flags *pflag.FlagSet) {
	d := config.NewConfigurationWithOptionsAndDefaults()

	flags.String("server-mode", d.Server.ServerMode, `server mode: "dev" or "prod"`)
	flags.Int("http-port", d.Server.HTTPPort, "HTTP listen port")
	flags.String("db-driver", string(d.Database.Driver), `database driver: "pgx" or "sqlite"`)
	flags.String("db-url", d.Database.URL, "datasource URL without credentials")
	flags.String("db-username", d.Database.Username, "database user")
	flags.String("db-password", d.Database.Password, "database password")
	flags.Uint("db-connect-retries", d.Database.ConnectRetries, "max attempts waiting for the database to become ready")
	flags.Bool("auth-enabled", d.Auth.Enabled, "require a bearer token on API routes")
	flags.String("auth-jwt-secret", d.Auth.JWTSecret, "HMAC secret used to validate bearer tokens")
	flags.String("log-level", d.LogLevel, "log verbosity (debug, info, warn, error)")
	flags.String("log-format", d.LogFormat, `log format: "json" or "console"`)
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	log := zap.S().Named("main")
	log.Infow("configuration loaded", "config", cfg.DebugMap())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.NewDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(ctx, db, cfg.Database.Driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	st := store.NewStore(db, cfg.Database.Driver)
	tutorialSrv := services.NewTutorialService(st)
	handler := handlers.New(tutorialSrv)

	srv, err := server.NewServer(cfg, db.PingContext, func(router *gin.RouterGroup) {
		handlers.RegisterRoutes(router, handler)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	log.Infow("stopped")
	return nil
}

func newLogger(cfg *config.Configuration) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zc zap.Config
	switch cfg.LogFormat {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q, expected \"json\" or \"console\"", cfg.LogFormat)
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

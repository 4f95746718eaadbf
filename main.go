package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/config"
	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/money"
	"github.com/moneta-finance/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

//	@title						Moneta
//	@description				The backend for Moneta, a personal finance tracker for transactions, credit cards, invoices and installment purchases.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	root := &cobra.Command{
		Use:           "moneta",
		Short:         "Backend for Moneta, a personal finance tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCommand(), migrateCommand(), installmentsCommand())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("moneta")
	}
}

// setup reads the configuration, configures logging and connects to the database.
// The returned formatter is also used by the API handlers.
func setup() (config.Config, money.Formatter, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, money.Formatter{}, err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if cfg.DBDriver == config.DriverPostgres {
		err = models.ConnectPostgres(cfg.DSN())
	} else {
		err = os.MkdirAll(cfg.DataDir, os.ModePerm)
		if err != nil {
			return config.Config{}, money.Formatter{}, fmt.Errorf("could not create data directory: %w", err)
		}
		err = models.Connect(cfg.DSN())
	}
	if err != nil {
		return config.Config{}, money.Formatter{}, err
	}

	f, err := money.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return config.Config{}, money.Formatter{}, err
	}
	v1.SetFormatter(f)

	return cfg, f, nil
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

// serve runs the API until ctx is cancelled and then shuts the server down.
func serve(ctx context.Context, cfg config.Config) error {
	r, teardown, err := router.Config(cfg.APIURL, cfg.CORSAllowOrigins)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(r.Group("/"), cfg.JWTSecret, cfg.EnablePprof)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.DBDriver).Msg("Starting server")

		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}

			log.Info().Str("driver", cfg.DBDriver).Msg("Database migrated")
			return nil
		},
	}
}

func installmentsCommand() *cobra.Command {
	var (
		user string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "installments",
		Short: "List the installment purchases of a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("--user must be a UUID: %w", err)
			}

			_, f, err := setup()
			if err != nil {
				return err
			}

			return listInstallments(cmd.OutOrStdout(), f, userID, all)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "ID of the user")
	cmd.Flags().BoolVar(&all, "all", false, "Include purchases that are paid off")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// listInstallments writes a table of the expenses of the user that are
// split into more than one installment.
func listInstallments(out io.Writer, f money.Formatter, userID uuid.UUID, all bool) error {
	var transactions []models.Transaction
	err := models.Scope(models.DB, userID).
		Where("type = ? AND installments > 1", models.TypeExpense).
		Order("transaction_date ASC, created_at ASC").
		Find(&transactions).Error
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tPAID\tINSTALLMENT\tREMAINING")

	for _, t := range transactions {
		status := t.InstallmentStatus()
		if status.IsPaidOff && !all {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\n",
			t.TransactionDate.Format(time.DateOnly),
			t.Description,
			status.PaidInstallments,
			status.TotalInstallments,
			f.Format(status.InstallmentValue),
			f.Format(status.RemainingValue),
		)
	}

	return w.Flush()
}

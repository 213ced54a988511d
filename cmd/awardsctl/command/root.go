package command

// root.go defines the awardsctl root command and the shared database setup
// used by every subcommand.

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"awardshub/database"
	"awardshub/internal/config"
	"awardshub/internal/events"
	"awardshub/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	databaseURL string // overrides DATABASE_URL when set
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "awardsctl",
	Short: "awardsctl - operator tools for the awards site",
	Long: `awardsctl runs maintenance tasks against the awards database:
- apply or roll back schema migrations
- create missing default content sections
- promote a registered user to admin
- open or close voting

Configuration is read from the same environment (and .env) as the API server.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "deadline for the whole command")
}

// env holds the handles a subcommand works with.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	pool      *pgxpool.Pool
	db        *gorm.DB
	publisher events.Publisher
}

func (e *env) Close() {
	if e.publisher != nil {
		e.publisher.Close()
	}
	if e.pool != nil {
		e.pool.Close()
	}
}

// openEnv loads config and connects to the database. withGorm is false for
// commands that only need the raw pool (migrations).
func openEnv(ctx context.Context, withGorm bool) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &env{
		cfg:    cfg,
		logger: logging.New(os.Stderr, cfg.LogLevel, "text"),
	}

	e.pool, err = database.OpenPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if withGorm {
		e.db, err = database.OpenGorm(e.pool, e.logger)
		if err != nil {
			e.Close()
			return nil, err
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		e.publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		e.publisher = events.NewLogPublisher(e.logger)
	}
	return e, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

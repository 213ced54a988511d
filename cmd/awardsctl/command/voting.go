package command

import (
	"fmt"
	"time"

	"awardshub/internal/cache"
	"awardshub/internal/microservices/http-api/repository"
	"awardshub/internal/microservices/http-api/service"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var votingCmd = &cobra.Command{
	Use:   "voting",
	Short: "Open or close voting",
}

var votingOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open voting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVotingOpen(cmd, true)
	},
}

var votingCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close voting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVotingOpen(cmd, false)
	},
}

func setVotingOpen(cmd *cobra.Command, open bool) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	e, err := openEnv(ctx, true)
	if err != nil {
		return err
	}
	defer e.Close()

	// the public config is cached, so the server must see the invalidation
	c, err := cache.NewRedisCache(e.cfg.RedisURL, e.cfg.RedisPassword, time.Duration(e.cfg.CacheTTL)*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to cache: %w", err)
	}
	defer c.Close()

	repo := repository.NewVotingConfigRepository(e.db)
	if _, err := repo.Ensure(ctx); err != nil {
		return fmt.Errorf("failed to load voting config: %w", err)
	}

	svc := service.NewVotingConfigService(repo, c, e.publisher, e.logger)
	cfg, err := svc.Update(ctx, service.VotingConfigPatch{IsOpen: &open}, "")
	if err != nil {
		return fmt.Errorf("failed to update voting config: %w", err)
	}

	state := "closed"
	if cfg.IsOpen {
		state = "open"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Voting is now %s\n", state)
	if cfg.StartsAt != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Window starts %s\n", humanize.Time(*cfg.StartsAt))
	}
	if cfg.EndsAt != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Window ends %s\n", humanize.Time(*cfg.EndsAt))
	}
	return nil
}

func init() {
	votingCmd.AddCommand(votingOpenCmd, votingCloseCmd)
	rootCmd.AddCommand(votingCmd)
}

package command

import (
	"fmt"
	"time"

	"awardshub/internal/cache"
	"awardshub/internal/microservices/http-api/repository"
	"awardshub/internal/microservices/http-api/service"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Site content commands",
}

var ensureDefaultsCmd = &cobra.Command{
	Use:   "ensure-defaults",
	Short: "Create any missing predefined content section",
	Long: `Inserts the default block for every predefined section that has no row yet.
Existing sections are never overwritten, so the command is safe to run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		e, err := openEnv(ctx, true)
		if err != nil {
			return err
		}
		defer e.Close()

		c, err := cache.NewRedisCache(e.cfg.RedisURL, e.cfg.RedisPassword, time.Duration(e.cfg.CacheTTL)*time.Second)
		if err != nil {
			e.logger.Warn("cache_disabled", "error", err.Error())
			c, _ = cache.NewRedisCache("", "", 0)
		}
		defer c.Close()

		svc := service.NewContentService(repository.NewContentRepository(e.db), c, e.cfg.QueryTimeout, e.publisher, e.logger)
		created, err := svc.EnsureDefaults(ctx)
		if err != nil {
			return fmt.Errorf("failed to ensure default content: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d section(s) created, %d predefined\n", created, len(service.DefaultSectionNames()))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(ensureDefaultsCmd)
	rootCmd.AddCommand(contentCmd)
}

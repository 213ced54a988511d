package command

import (
	"fmt"
	"strconv"

	"awardshub/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Schema migration commands",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		e, err := openEnv(ctx, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := database.RunMigrations(e.pool, e.logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1 step)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		e, err := openEnv(ctx, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := database.RollbackMigrations(e.pool, steps, e.logger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Rolled back %d migration(s)\n", steps)
		return nil
	},
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps < 1 {
		return 0, fmt.Errorf("invalid steps %q: must be a positive integer", args[0])
	}
	return steps, nil
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

package command

import (
	"fmt"

	"awardshub/internal/microservices/http-api/repository"
	"awardshub/internal/microservices/http-api/service"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "User management commands",
}

var promoteCmd = &cobra.Command{
	Use:   "promote [email]",
	Short: "Grant the admin role to a registered user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		e, err := openEnv(ctx, true)
		if err != nil {
			return err
		}
		defer e.Close()

		svc := service.NewUserAdminService(repository.NewUserRepository(e.db), e.publisher, e.logger)
		user, err := svc.PromoteByEmail(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to promote %s: %w", args[0], err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ User promoted")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\nUsername: %s\nRole: %s\n", user.ID, user.Username, user.Role)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(usersCmd)
}

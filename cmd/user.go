package main

import (
	"fmt"

	"countervalidator/internal/account"
	"countervalidator/internal/config"
	"countervalidator/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// userCommand groups account maintenance subcommands.
func userCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manages user accounts",
	}
	cmd.AddCommand(userCreateCommand(cfg))

	return cmd
}

func userCreateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates an active user able to log in",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			var in account.NewUser
			in.Email, _ = cmd.Flags().GetString("email")
			in.Password, _ = cmd.Flags().GetString("password")
			in.FirstName, _ = cmd.Flags().GetString("first-name")
			in.LastName, _ = cmd.Flags().GetString("last-name")
			in.IsValidatorAdmin, _ = cmd.Flags().GetBool("validator-admin")
			in.IsSuperuser, _ = cmd.Flags().GetBool("superuser")
			in.EmailVerified, _ = cmd.Flags().GetBool("verified")
			in.ReceiveOperatorEmails, _ = cmd.Flags().GetBool("operator-emails")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			accounts, err := account.New(strg, account.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create account service", zap.Error(err))
			}
			user, err := accounts.CreateUser(ctx, in)
			if err != nil {
				logger.Fatal(ctx, "could not create user", zap.Error(err))
			}

			fmt.Println(user.ID.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Login email")
	cmd.Flags().String("password", "", "Password, at least 8 characters")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().Bool("validator-admin", false, "May see and manage validations of all users")
	cmd.Flags().Bool("operator-emails", false, "Send the daily validation report to this validator admin")
	cmd.Flags().Bool("superuser", false, "Superuser")
	cmd.Flags().Bool("verified", true, "Mark the email address as verified")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

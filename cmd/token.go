package main

import (
	"fmt"
	"time"

	"countervalidator/internal/account"
	"countervalidator/internal/config"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that prints a signed RS256
// bearer token for a user id, e.g. for scripts calling the API.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a bearer token for the given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user ID", zap.Error(err))
			}

			opts := account.NewOptions(cfg)
			opts.TokenTTL = ttl
			// token signing does not touch storage
			accounts, err := account.New(nil, opts)
			if err != nil {
				logger.Fatal(ctx, "could not create account service", zap.Error(err))
			}
			signed, err := accounts.IssueToken(domain.UserID(userID))
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

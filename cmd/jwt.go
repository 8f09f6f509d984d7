package main

import (
	"context"
	"fmt"
	"shortener/internal/api/handler/v1handler"
	"shortener/internal/config"
	"shortener/pkg/domain"
	"shortener/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given user email using the configured key pair. The user does not
// have to exist; tokens of unknown users are rejected when used.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user email",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			opts := v1handler.NewSecHandlerOptions(cfg)
			if ttl > 0 {
				opts.TTL = ttl
			}
			sh, err := v1handler.NewSecHandler(opts, nil)
			if err != nil {
				logger.Fatal(ctx, "could not load JWT keys", zap.Error(err))
			}

			signed, expiresAt, err := sh.Issue(&domain.User{Email: email})
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}
			logger.Info(ctx, "issued JWT", zap.String("email", email), zap.Time("expiresAt", expiresAt))

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Email of the user the token is issued to")
	cmd.Flags().Duration("ttl", 0, "Token TTL (e.g., 30s, 15m, 1h); defaults to the configured TTL")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

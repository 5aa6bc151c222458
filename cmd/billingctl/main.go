// billingctl is an operator CLI for tasks that must not go through the HTTP
// API, such as bootstrapping the first admin account.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	"github.com/bizledger/inventory_billing_app/internal/platform/config"
	"github.com/bizledger/inventory_billing_app/internal/repositories/database/pgsql"
	"github.com/bizledger/inventory_billing_app/internal/utils"
	"github.com/bizledger/inventory_billing_app/pkg/database"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "billingctl",
		Short: "Operator tooling for the inventory billing backend",
	}

	rootCmd.AddCommand(newCreateAdminCmd())
	rootCmd.AddCommand(newResetPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openUserRepo loads config, connects to the database and returns the user
// repository plus a cleanup function.
func openUserRepo(ctx context.Context) (portsrepo.UserRepositoryFacade, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)
	return repos.UserRepo, pool.Close, nil
}

func newCreateAdminCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin user",
		Long:  "Creates an admin user directly in the database. Use this to bootstrap a fresh install before any users exist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userRepo, closeDB, err := openUserRepo(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			hash, err := utils.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			now := time.Now().UTC()
			userID := uuid.NewString()
			admin := &domain.User{
				UserID:       userID,
				Username:     username,
				Email:        email,
				PasswordHash: hash,
				Role:         domain.RoleAdmin,
				IsActive:     true,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     userID,
					LastUpdatedAt: now,
					LastUpdatedBy: userID,
				},
			}

			if err := userRepo.SaveUser(ctx, admin); err != nil {
				return fmt.Errorf("save user: %w", err)
			}

			fmt.Printf("admin %q created with id %s\n", username, userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for the new admin")
	cmd.Flags().StringVar(&email, "email", "", "email for the new admin")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newResetPasswordCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a user's password by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userRepo, closeDB, err := openUserRepo(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			user, err := userRepo.FindUserByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("find user: %w", err)
			}

			hash, err := utils.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			user.PasswordHash = hash
			user.LastUpdatedAt = time.Now().UTC()
			user.LastUpdatedBy = user.UserID

			if err := userRepo.UpdateUser(ctx, user); err != nil {
				return fmt.Errorf("update user: %w", err)
			}

			fmt.Printf("password reset for %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

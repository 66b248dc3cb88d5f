package main

import (
	"fmt"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/config"
	"github.com/andreyxaxa/Photo-Gallery/internal/repo/persistent"
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase/auth"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/andreyxaxa/Photo-Gallery/pkg/postgres"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage gallery users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user that can sign in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		cfg, err := config.NewDatabase()
		if err != nil {
			return err
		}

		l := logger.New(cfg.Log.Level, cfg.Log.Format)

		pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(1))
		if err != nil {
			return fmt.Errorf("galleryctl - user create - postgres.New: %w", err)
		}
		defer pg.Close()

		// user creation touches no sessions
		authUseCase := auth.New(persistent.NewUserRepo(pg), nil, 0, time.Local, l)

		user, err := authUseCase.CreateUser(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Email, user.ID)

		return nil
	},
}

func init() {
	userCreateCmd.Flags().String("email", "", "user email")
	userCreateCmd.Flags().String("password", "", "user password")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}

package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saradorri/gamestore/internal/app"
	"github.com/saradorri/gamestore/internal/cli/output"
	"github.com/saradorri/gamestore/internal/domain"
)

// NewRootCommand builds the customer command tree
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "customer",
		Short:         "Game storefront customer tool",
		Long:          "Browse the catalog, purchase and rate games, and manage your owned games.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config", "config file directory")

	rootCmd.AddCommand(newEnterIDCommand(&configPath))
	rootCmd.AddCommand(newViewCatalogueCommand(&configPath))
	rootCmd.AddCommand(newPurchaseGameCommand(&configPath))
	rootCmd.AddCommand(newRateGameCommand(&configPath))
	rootCmd.AddCommand(newViewOwnedGamesCommand(&configPath))
	rootCmd.AddCommand(newDeleteGameCommand(&configPath))
	rootCmd.AddCommand(newCommandsCommand())

	return rootCmd
}

// customerUseCase bootstraps the application and extracts the customer
// use case from the object graph.
func customerUseCase(configPath string) (domain.CustomerUseCase, error) {
	application := app.NewApplication(context.Background())
	if err := application.Setup(configPath); err != nil {
		return nil, err
	}
	var uc domain.CustomerUseCase
	if err := application.Populate(&uc); err != nil {
		return nil, err
	}
	return uc, nil
}

func newEnterIDCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "enter_id <user_id>",
		Short: "Select the active user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := customerUseCase(*configPath)
			if err != nil {
				return err
			}

			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: customer enter_id <user_id>", err)
			}

			if err := uc.SelectUser(userID); err != nil {
				return err
			}
			output.Success("User ID set.")
			return nil
		},
	}
}

func newViewCatalogueCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "view_catalogue",
		Short: "List the full game catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := customerUseCase(*configPath)
			if err != nil {
				return err
			}

			// Every operation past enter_id needs an active user.
			if _, err := uc.ActiveUserID(); err != nil {
				return err
			}

			games, err := uc.ListCatalogue()
			if err != nil {
				return err
			}
			for _, g := range games {
				output.Info("%s", output.Game(g))
			}
			return nil
		},
	}
}

func newPurchaseGameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "purchase_game <game_id>",
		Short: "Purchase a game for the active user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := customerUseCase(*configPath)
			if err != nil {
				return err
			}

			userID, err := uc.ActiveUserID()
			if err != nil {
				return err
			}

			gameID, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: customer purchase_game <game_id>", err)
			}

			if err := uc.PurchaseGame(userID, gameID); err != nil {
				return err
			}
			output.Success("Game purchased successfully.")
			return nil
		},
	}
}

func newRateGameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rate_game <game_id> <rating>",
		Short: "Rate a game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := customerUseCase(*configPath)
			if err != nil {
				return err
			}

			// An active user must be selected, though the rating itself
			// is not tied to the user.
			if _, err := uc.ActiveUserID(); err != nil {
				return err
			}

			gameID, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: customer rate_game <game_id> <rating>", err)
			}
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: customer rate_game <game_id> <rating>", err)
			}

			if _, err := uc.RateGame(gameID, rating); err != nil {
				return err
			}
			output.Success("Game rated successfully.")
			return nil
		},
	}
}

func newViewOwnedGamesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "view_owned_games",
		Short: "List the active user's owned games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := customerUseCase(*configPath)
			if err != nil {
				return err
			}

			userID, err := uc.ActiveUserID()
			if err != nil {
				return err
			}

			owned, hasRecord, err := uc.OwnedGames(userID)
			if err != nil {
				return err
			}
			if !hasRecord {
				output.Info("No games owned.")
				return nil
			}
			for _, g := range owned {
				output.Info("ID: %d, Title: %s", g.ID, g.Title)
			}
			return nil
		},
	}
}

func newDeleteGameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete_game <game_id>",
		Short: "Remove a game from the active user's owned games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := customerUseCase(*configPath)
			if err != nil {
				return err
			}

			userID, err := uc.ActiveUserID()
			if err != nil {
				return err
			}

			gameID, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: customer delete_game <game_id>", err)
			}

			if err := uc.RemoveOwnedGame(userID, gameID); err != nil {
				return err
			}
			output.Success("Game successfully removed from your owned games.")
			return nil
		},
	}
}

func newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the available customer commands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.Info("Available customer commands:")
			output.Info("1. enter_id <user_id>")
			output.Info("2. view_catalogue")
			output.Info("3. purchase_game <game_id>")
			output.Info("4. rate_game <game_id> <rating>")
			output.Info("5. view_owned_games")
			output.Info("6. delete_game <game_id>")
			output.Info("7. commands")
		},
	}
}

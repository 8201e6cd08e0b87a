package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saradorri/gamestore/internal/app"
	"github.com/saradorri/gamestore/internal/cli/output"
	"github.com/saradorri/gamestore/internal/domain"
)

// NewRootCommand builds the admin command tree
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "admin",
		Short:         "Game storefront administration",
		Long:          "Maintain the game catalog and inspect every user's purchases.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config", "config file directory")

	rootCmd.AddCommand(newAddGameCommand(&configPath))
	rootCmd.AddCommand(newEditGameCommand(&configPath))
	rootCmd.AddCommand(newDeleteGameCommand(&configPath))
	rootCmd.AddCommand(newViewGamesCommand(&configPath))
	rootCmd.AddCommand(newViewPurchasesCommand(&configPath))
	rootCmd.AddCommand(newCommandsCommand())

	return rootCmd
}

// adminUseCase bootstraps the application and extracts the admin use
// case from the object graph.
func adminUseCase(configPath string) (domain.AdminUseCase, error) {
	application := app.NewApplication(context.Background())
	if err := application.Setup(configPath); err != nil {
		return nil, err
	}
	var uc domain.AdminUseCase
	if err := application.Populate(&uc); err != nil {
		return nil, err
	}
	return uc, nil
}

func newAddGameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add_game <title words> <price>",
		Short: "Add a new game to the catalog",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := adminUseCase(*configPath)
			if err != nil {
				return err
			}

			// All but the last argument form the title.
			title := strings.Join(args[:len(args)-1], " ")
			price, err := strconv.ParseFloat(args[len(args)-1], 64)
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: admin add_game <title words> <price>", err)
			}

			if _, err := uc.AddGame(title, price); err != nil {
				return err
			}
			output.Success("Game added successfully.")
			return nil
		},
	}
}

func newEditGameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "edit_game <id> <title|price> <new_value>",
		Short: "Edit a single field of a game",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := adminUseCase(*configPath)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: admin edit_game <id> <title|price> <new_value>", err)
			}

			if err := uc.EditGame(id, args[1], args[2]); err != nil {
				return err
			}
			output.Success("Game edited successfully.")
			return nil
		},
	}
}

func newDeleteGameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete_game <id>",
		Short: "Delete a game and cascade into the purchase ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := adminUseCase(*configPath)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Usage: admin delete_game <id>", err)
			}

			if err := uc.DeleteGame(id); err != nil {
				return err
			}
			output.Success("Game deleted and purchases updated.")
			return nil
		},
	}
}

func newViewGamesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "view_games",
		Short: "List the full game catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := adminUseCase(*configPath)
			if err != nil {
				return err
			}

			games, err := uc.ListGames()
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

func newViewPurchasesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "view_purchases",
		Short: "List every user's purchases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := adminUseCase(*configPath)
			if err != nil {
				return err
			}

			views, err := uc.ListPurchases()
			if err != nil {
				return err
			}
			for _, v := range views {
				output.Info("User %d owns:", v.UserID)
				for _, item := range v.Items {
					if item.Deleted {
						output.Info("  - (Deleted game ID %d)", item.GameID)
					} else {
						output.Info("  - %s", item.Title)
					}
				}
			}
			return nil
		},
	}
}

func newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the available admin commands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.Info("Available admin commands:")
			output.Info("1. add_game <title> <price>")
			output.Info("2. edit_game <id> <title|price> <new_value>")
			output.Info("3. delete_game <id>")
			output.Info("4. view_games")
			output.Info("5. view_purchases")
			output.Info("6. commands")
		},
	}
}

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saradorri/gamestore/internal/config"
	"github.com/spf13/viper"
)

func (a *application) setupViper(path string) error {
	env := config.GetEnvironment()

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yml")

	viper.AddConfigPath(path)

	viper.SetDefault("store.gamesFile", "data/games.txt")
	viper.SetDefault("store.purchasesFile", "data/purchases.txt")
	viper.SetDefault("store.currentUserFile", "data/current_user.txt")
	viper.SetDefault("log.level", "error")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvPrefix("GAMESTORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The config file is optional: the storefront runs on defaults when
	// no config directory is present.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	var c config.Config
	if err := viper.Unmarshal(&c); err != nil {
		return err
	}
	a.config = &c
	return nil
}

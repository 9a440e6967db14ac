package cmd

import (
	"errors"
	"log"

	"github.com/nsifat/bicadmin"
	"github.com/spf13/viper"
)

// config is resolved per invocation: flags beat environment variables
// ($BIC_DATA, $BIC_USERNAME, $BIC_PASSWORD, $BIC_CURRENCY), which beat an
// optional bic.yaml in the working directory, which beats the defaults.
type config struct {
	Data     string
	Username string
	Password string
	Currency string
}

func loadConfig() config {
	v := viper.New()
	v.SetDefault("data", ".bic")
	v.SetDefault("username", bicadmin.DefaultUsername)
	v.SetDefault("password", bicadmin.DefaultPassword)
	v.SetDefault("currency", "")

	v.SetConfigName("bic")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("warning: could not read bic.yaml: %v", err)
		}
	}

	v.SetEnvPrefix("bic")
	v.AutomaticEnv()

	c := config{
		Data:     v.GetString("data"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
		Currency: v.GetString("currency"),
	}
	if *dataDir != "" {
		c.Data = *dataDir
	}
	return c
}

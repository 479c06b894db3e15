package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/azure-identities/identities-api/internal/hostenv"
	"github.com/azure-identities/identities-api/internal/server"
)

const (
	envPrefix      = "IDENTITIES"
	configFileName = "config"
)

type appConfig struct {
	Server   *server.Config
	LogLevel slog.Level
}

// loadConfig resolves flags > env > config file > defaults.
func loadConfig(cmd *cobra.Command) (*appConfig, error) {
	v := viper.New()

	v.SetDefault("environment", hostenv.Production)
	v.SetDefault("http.addr", server.DefaultAddr)
	v.SetDefault("http.https_addr", server.DefaultHTTPSAddr)
	v.SetDefault("http.https_redirect", true)
	v.SetDefault("log_level", "info")

	if cmd.Flag("config").Changed {
		v.SetConfigFile(cmd.Flag("config").Value.String())
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		_, ok := err.(viper.ConfigFileNotFoundError)
		if !enoent && !ok {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
	}

	v.BindPFlag("environment", cmd.Flags().Lookup("environment"))
	v.BindPFlag("http.addr", cmd.Flags().Lookup("bind"))
	v.BindPFlag("http.https_addr", cmd.Flags().Lookup("https-bind"))
	v.BindPFlag("http.cert_file", cmd.Flags().Lookup("cert"))
	v.BindPFlag("http.key_file", cmd.Flags().Lookup("key"))
	v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := &server.Config{
		Environment: hostenv.New(v.GetString("environment")),
		HTTP: server.HTTPConfig{
			Addr:          v.GetString("http.addr"),
			HTTPSAddr:     v.GetString("http.https_addr"),
			CertFile:      v.GetString("http.cert_file"),
			KeyFile:       v.GetString("http.key_file"),
			RedirectHost:  v.GetString("http.redirect_host"),
			HTTPSRedirect: v.GetBool("http.https_redirect"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &appConfig{Server: cfg, LogLevel: level}, nil
}

package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillmatch/job-recommender/internal/recommend"
)

const (
	app = "job-recommender"
)

type Config struct {
	Server  *ServerConfig    `mapstructure:"server"`
	Catalog *CatalogConfig   `mapstructure:"catalog"`
	Resume  *ResumeConfig    `mapstructure:"resume"`
	Rules   *recommend.Rules `mapstructure:"rules"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type CatalogConfig struct {
	URL               string  `mapstructure:"url"`
	TokenFile         string  `mapstructure:"token-file"`
	UserAgent         string  `mapstructure:"user-agent"`
	TimeoutSeconds    int     `mapstructure:"timeout-seconds"`
	RequestsPerSecond float64 `mapstructure:"requests-per-second"`
	Concurrency       int     `mapstructure:"concurrency"`
}

type ResumeConfig struct {
	Disabled       bool `mapstructure:"disabled"`
	TimeoutSeconds int  `mapstructure:"timeout-seconds"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "job-recommender ranks job postings from a catalog against a user profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("catalog.token-file", "CATALOG_TOKEN_FILE"); err != nil {
		log.Fatalf("binding CATALOG_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is job-recommender.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Running purely on defaults is fine; an explicit but broken config
		// file is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && cfgFile == "" {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// effectiveRules resolves the configured rule tables, falling back to the
// built-in defaults for anything unset.
func effectiveRules(config *Config) recommend.Rules {
	if config != nil && config.Rules != nil {
		return config.Rules.WithDefaults()
	}
	return recommend.DefaultRules()
}

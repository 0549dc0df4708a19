package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the settings disnorm reads from its config file and
// DISNORM_* environment variables. Flags override both.
type Config struct {
	Debug   bool   `json:"debug" mapstructure:"debug" jsonschema:"title=Debug,description=Enable debug logging"`
	Color   bool   `json:"color" mapstructure:"color" jsonschema:"title=Color,description=Highlight output on terminals,default=true"`
	Jobs    int    `json:"jobs" mapstructure:"jobs" jsonschema:"title=Jobs,description=Listings normalized in parallel by batch,minimum=1"`
	Context int    `json:"context" mapstructure:"context" jsonschema:"title=Context,description=Unchanged lines around each diff hunk,minimum=0,default=0"`
	LogFile string `json:"log_file" mapstructure:"log_file" jsonschema:"title=Log File,description=Append JSON log records to this file"`
}

// bindFlag ties a viper key to a flag; a missing flag is a programming error.
func bindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

// loadConfig returns the merged configuration.
func loadConfig() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

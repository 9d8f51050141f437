package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	CPU      string `mapstructure:"cpu"`
	ROM      string `mapstructure:"rom"`
	Origin   uint16 `mapstructure:"origin"`
	Steps    int    `mapstructure:"steps"`
	LogLevel string `mapstructure:"log-level"`
}

// loadConfig binds --cpu/--rom/--origin/--steps/--log-level through
// pflag, then layers a chipbench.yaml (if present) underneath via
// viper so either source can supply a value.
func loadConfig(args []string) (config, error) {
	flags := pflag.NewFlagSet("chipbench", pflag.ContinueOnError)
	flags.String("cpu", "m6502", "CPU engine to run (m6800, m6502, m6809, z80, i8035)")
	flags.String("rom", "", "path to a flat binary image to load")
	flags.Uint16("origin", 0, "bus address the image is loaded at")
	flags.Int("steps", 1, "number of bus cycles (ticks, not instructions) to run")
	flags.String("log-level", "info", "zerolog level: trace, debug, info, warn, error")
	if err := flags.Parse(args); err != nil {
		return config{}, errors.Wrap(err, "parsing flags")
	}

	v := viper.New()
	v.SetConfigName("chipbench")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.BindPFlags(flags); err != nil {
		return config{}, errors.Wrap(err, "binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config{}, errors.Wrap(err, "reading chipbench.yaml")
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, errors.Wrap(err, "unmarshalling config")
	}
	return cfg, nil
}

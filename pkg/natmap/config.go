package natmap

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config carries default option values loaded from a yaml file. Only
// options still at their zero value pick up config values, so flags win.
type Config struct {
	DMZ      string `yaml:"dmz"`
	Internal string `yaml:"internal"`
	All      bool   `yaml:"all"`
	Threads  int    `yaml:"threads"`
	Output   string `yaml:"output"`
}

func (options *Options) loadConfigFile() error {
	if options.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(options.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return errors.Wrap(err, "parse config file")
	}

	if options.DMZ == "" {
		options.DMZ = config.DMZ
	}
	if options.Internal == "" {
		options.Internal = config.Internal
	}
	if !options.All {
		options.All = config.All
	}
	if options.Threads == DefaultThreads && config.Threads > 0 {
		options.Threads = config.Threads
	}
	if options.Output == "" {
		options.Output = config.Output
	}

	return nil
}

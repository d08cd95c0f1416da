package main


import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"sling/net"
)


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


// Default values for the CLI commands, optionally overridden by a TOML
// file and by command flags.
//
type Config struct {
	Host string     `toml:"host"`
	Port int        `toml:"port"`
	Attempts int    `toml:"attempts"`
	DelayMs int     `toml:"delay_ms"`
}


func DefaultConfig() Config {
	return Config{
		Host: net.DefaultHost,
		Port: net.DefaultPort,
		Attempts: net.DefaultSendAttempts,
		DelayMs: int(net.DefaultSendDelay / time.Millisecond),
	}
}

// Load the configuration from the TOML file at `path`, or the default
// configuration if `path` is empty.
// An out of range port is left to the `Channel` constructor which falls
// back to the default port with a warning.
//
func LoadConfig(path string) (Config, error) {
	var config Config = DefaultConfig()
	var data []byte
	var err error

	if path == "" {
		return config, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot load config %s: %w",
			path, err)
	}

	err = toml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config %s: %w",
			path, err)
	}

	if config.Attempts < 1 {
		return Config{}, fmt.Errorf("config %s: attempts must be " +
			"at least 1", path)
	}

	if config.DelayMs < 0 {
		return Config{}, fmt.Errorf("config %s: delay_ms must not " +
			"be negative", path)
	}

	return config, nil
}

func (this Config) Delay() time.Duration {
	return time.Duration(this.DelayMs) * time.Millisecond
}

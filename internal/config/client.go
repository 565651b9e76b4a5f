package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command line API client.
type ClientConfig struct {
	// ServerAddress is the base URL or host:port of the volunteer hub API.
	// Env: HUB_SERVER_ADDRESS
	ServerAddress string `env:"HUB_SERVER_ADDRESS"`

	// RequestTimeout bounds every API call.
	// Env: HUB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"HUB_REQUEST_TIMEOUT"`
}

// GetClientConfig reads the client configuration from the environment and
// from args. Environment values win over flags, flags over defaults. The
// positional arguments left after the flags are returned as well.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("volunteer-hub-client", flag.ContinueOnError)
	flagCfg := &ClientConfig{}
	fs.StringVar(&flagCfg.ServerAddress, "s", "", "API address (e.g. http://localhost:5000)")
	fs.DurationVar(&flagCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{}
	for _, layer := range []*ClientConfig{envCfg, flagCfg, {ServerAddress: "http://localhost:5000", RequestTimeout: 10 * time.Second}} {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, fs.Args(), nil
}

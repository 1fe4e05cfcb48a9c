package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// The YAML document must be a flat mapping of flag names to values. Flag
// names with hyphens (e.g., "log-level") may use underscores in the config
// file (e.g., "log_level") instead.
//
// Example config file:
//
//	log-level: debug
//	log-format: json
//	log-caller: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-caller=true
//
// Command-line flags override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Empty config file - return empty config
			return config{}, nil
		}

		return nil, err
	}

	cfg := make(config, len(raw))
	for key, value := range raw {
		// Kong requires numbers as strings for parsing
		if num, ok := value.(int64); ok {
			cfg[key] = strconv.FormatInt(num, 10)
		} else if num, ok := value.(uint64); ok {
			cfg[key] = strconv.FormatUint(num, 10)
		} else if num, ok := value.(float64); ok {
			cfg[key] = strconv.FormatFloat(num, 'f', -1, 64)
		} else {
			cfg[key] = value
		}
	}

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys may use
	// underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

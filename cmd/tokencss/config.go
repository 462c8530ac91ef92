package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/tokencss"
	"github.com/yacobolo/tokencss/internal/resolver"
)

const defaultConfigPath = ".tokencss.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Without a koanf instance posflag
	// only reads flags that were set on the command line.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TOKENCSS_* prefix)
	if err := k.Load(env.Provider("TOKENCSS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envSections are the config file sections an environment variable can address.
var envSections = map[string]bool{"theme": true, "cache": true, "generate": true}

// envKey maps an environment variable to its config key. Only the underscore
// after the section is a separator, the rest become hyphens:
//
//	TOKENCSS_THEME_PATH                     -> theme.path
//	TOKENCSS_GENERATE_SCHEMA_MEDIA          -> generate.schema-media
//	TOKENCSS_THEME_OVERRIDES_HIGH_CONTRAST  -> theme.overrides.high-contrast
//	TOKENCSS_OUTPUT_FORMAT                  -> output-format
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "TOKENCSS_"))
	if name, ok := strings.CutPrefix(key, "theme_overrides_"); ok {
		return "theme.overrides." + strings.ReplaceAll(name, "_", "-")
	}

	section, name, found := strings.Cut(key, "_")
	if !found || !envSections[section] {
		return strings.ReplaceAll(key, "_", "-")
	}
	return section + "." + strings.ReplaceAll(name, "_", "-")
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig(log *zap.Logger) (tokencss.Config, error) {
	overrides, err := buildOverrides()
	if err != nil {
		return tokencss.Config{}, err
	}

	config := tokencss.Config{
		ThemePath:     getStringWithFallback("theme-path", "theme.path", "theme"),
		Overrides:     overrides,
		Variant:       getStringWithFallback("theme-variant", "theme.variant", ""),
		CacheEnabled:  getBoolWithFallback("cache-enabled", "cache.enabled", true),
		CacheDuration: getDurationWithFallback("cache-duration", "cache.duration", resolver.DefaultTTL),
		OutputPath:    getStringWithFallback("output", "generate.output", ""),
		States:        getBoolWithFallback("states", "generate.states", true),
		SchemaMedia:   getBoolWithFallback("schema-media", "generate.schema-media", false),
		Strict:        getBoolWithFallback("strict", "generate.strict", false),
		Logger:        log,
	}

	// Handle scan patterns: check flag key first, then config key
	if scan := k.Strings("scan"); len(scan) > 0 {
		config.ScanPatterns = scan
	} else if scan := k.Strings("generate.scan"); len(scan) > 0 {
		config.ScanPatterns = scan
	} else {
		config.ScanPatterns = []string{
			"**/*.templ",
			"**/*.html",
		}
	}

	return config, nil
}

// buildOverrides merges theme.overrides from the config file with
// --override name=path flags. Flags win on name clashes.
func buildOverrides() (map[string]string, error) {
	overrides := make(map[string]string)
	for name, path := range k.StringMap("theme.overrides") {
		overrides[name] = path
	}

	var errs error
	for _, pair := range k.Strings("override") {
		name, path, ok := strings.Cut(pair, "=")
		name, path = strings.TrimSpace(name), strings.TrimSpace(path)
		if !ok || name == "" || path == "" {
			errs = multierr.Append(errs, fmt.Errorf("invalid override %q, expected name=path", pair))
			continue
		}
		overrides[name] = path
	}
	if errs != nil {
		return nil, errs
	}

	return overrides, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
// Zero durations count as unset.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if v := k.Duration(flagKey); v > 0 {
		return v
	}
	if v := k.Duration(configKey); v > 0 {
		return v
	}
	return defaultVal
}

package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/errors"
)

// envPrefix namespaces configuration environment variables,
// e.g. SWATCHMAP_FETCH_TIMEOUT.
const envPrefix = "SWATCHMAP"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Build configuration
	SourcesPath    string
	DatasetPath    string
	SourcesLogPath string
	LibraryPath    string
	FetchTimeout   time.Duration
	UserAgent      string
	FetchRate      float64
	FetchMaxBytes  int64

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (explicit path, else ~/.swatchmap.yaml or ./.swatchmap.yaml)
// 5. Defaults
//
// An explicit configFile that cannot be read is a *errors.ConfigError; a
// missing file in the search path is not.
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile == "" {
		configFile = os.Getenv(envPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read config file "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "invalid config file", err)
			}
		}
	}

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		SourcesPath:    v.GetString("sources"),
		DatasetPath:    v.GetString("out"),
		SourcesLogPath: v.GetString("log"),
		LibraryPath:    v.GetString("library"),
		FetchTimeout:   v.GetDuration("fetch.timeout"),
		UserAgent:      v.GetString("fetch.user_agent"),
		FetchRate:      v.GetFloat64("fetch.rate"),
		FetchMaxBytes:  v.GetInt64("fetch.max_bytes"),

		// Logging configuration. LogLevel stays empty unless set so that
		// -v/-q can take effect.
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sources", constants.DefaultSourcesPath)
	v.SetDefault("out", constants.DefaultDatasetPath)
	v.SetDefault("log", constants.DefaultSourcesLogPath)
	v.SetDefault("library", constants.DefaultDatasetPath)
	v.SetDefault("fetch.timeout", constants.DefaultFetchTimeout)
	v.SetDefault("fetch.user_agent", constants.DefaultUserAgent)
	v.SetDefault("fetch.rate", constants.DefaultFetchRate)
	v.SetDefault("fetch.max_bytes", constants.MaxResponseBytes)
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return errors.NewConfigError("fetch.timeout", "must be positive", nil)
	}
	if c.FetchRate < 0 {
		return errors.NewConfigError("fetch.rate", "must not be negative", nil)
	}
	if c.FetchMaxBytes <= 0 {
		return errors.NewConfigError("fetch.max_bytes", "must be positive", nil)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose || c.Verbose
	c.Quiet = quiet || c.Quiet
	c.NoColor = noColor || c.NoColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

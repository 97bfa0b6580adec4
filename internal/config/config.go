package config

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "ProjectMovies/1.0 (+https://github.com/Belphemur/ProjectMovies)"

const (
	DefaultTMDBBaseURL      = "https://api.themoviedb.org"
	DefaultTMDBImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultLanguage         = "en-US"
	DefaultSiteName         = "Project Movies"
)

// ErrMissingAPIKey is returned by Validate when no media database key is configured.
var ErrMissingAPIKey = errors.New("tmdb.api_key (TMDB_API_KEY) is required")

type Config struct {
	TMDB struct {
		APIKey       string `mapstructure:"api_key"`
		BaseURL      string `mapstructure:"base_url"`
		ImageBaseURL string `mapstructure:"image_base_url"`
		Language     string `mapstructure:"language"`
	} `mapstructure:"tmdb"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s"; empty means no timeout
	UserAgent             string `mapstructure:"user_agent"`
	SiteName              string `mapstructure:"site_name"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = newLogger(os.Stdout, "")

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = newLogger(os.Stdout, config.LogFile).Level(level)

	logger.Info().Str("level", level.String()).Str("log_file", config.LogFile).Msg("Logging configured")
	globalConfig = config
	logger.Info().Msg("Configuration loaded successfully")
}

// newLogger builds the console logger, teeing into a rotating file when logFile is set.
func newLogger(out io.Writer, logFile string) zerolog.Logger {
	var w io.Writer = zerolog.ConsoleWriter{
		Out:     out,
		NoColor: false,
	}
	if logFile != "" {
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func LoadConfig() (*Config, error) {
	// .env files never override variables already present in the environment
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			if err := godotenv.Load(name); err != nil {
				return nil, err
			}
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("tmdb.api_key", "APP_TMDB_API_KEY", "TMDB_API_KEY")

	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", DefaultTMDBBaseURL)
	v.SetDefault("tmdb.image_base_url", DefaultTMDBImageBaseURL)
	v.SetDefault("tmdb.language", DefaultLanguage)
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("client_timeout", "")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("site_name", DefaultSiteName)
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.ApplyDefaults()

	return &config, nil
}

// ApplyDefaults fills empty fields so hand-built configs (tests, embedding) behave like loaded ones.
func (c *Config) ApplyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.SiteName == "" {
		c.SiteName = DefaultSiteName
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = DefaultTMDBBaseURL
	}
	c.TMDB.BaseURL = strings.TrimRight(c.TMDB.BaseURL, "/")
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = DefaultTMDBImageBaseURL
	}
	c.TMDB.ImageBaseURL = strings.TrimRight(c.TMDB.ImageBaseURL, "/")
	c.TMDB.Language = NormalizeLanguage(c.TMDB.Language)
}

// NormalizeLanguage returns the canonical BCP 47 form of tag ("en-us" becomes "en-US").
// Empty or invalid tags fall back to DefaultLanguage.
func NormalizeLanguage(tag string) string {
	if tag == "" {
		return DefaultLanguage
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		logger.Warn().Err(err).Str("language", tag).Msg("Invalid language tag, using default")
		return DefaultLanguage
	}
	return parsed.String()
}

// Validate reports configuration that would make the site unusable.
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func GetConfig() *Config {
	return globalConfig
}

// GetUserAgent returns the loaded User-Agent, or DefaultUserAgent before config is loaded.
func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}

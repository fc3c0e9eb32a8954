package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig

	Scheduler SchedulerConfig
	AI        AIConfig
	Region    RegionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// SchedulerConfig drives the background poller.
type SchedulerConfig struct {
	Enabled              bool
	PollInterval         time.Duration
	HousekeepingInterval time.Duration
	LogRetentionDays     int
}

// AIConfig holds configuration for the AI provider layer.
type AIConfig struct {
	AttemptTimeout time.Duration

	Qwen   ProviderConfig
	Gemini ProviderConfig
	OpenAI ProviderConfig
}

// ProviderConfig holds configuration for a single AI provider.
// An empty APIKey disables the provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RegionConfig struct {
	CacheSize int
}

type RateLimitConfig struct {
	ParsePerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/finbook/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/finbook/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	cfg.Scheduler.Enabled = viper.GetBool("scheduler.enabled")
	cfg.Scheduler.PollInterval = viper.GetDuration("scheduler.poll_interval")
	cfg.Scheduler.HousekeepingInterval = viper.GetDuration("scheduler.housekeeping_interval")
	cfg.Scheduler.LogRetentionDays = viper.GetInt("scheduler.log_retention_days")

	cfg.AI.AttemptTimeout = viper.GetDuration("ai.attempt_timeout")
	cfg.AI.Qwen = loadProvider("ai.qwen", "dashscope_api_key")
	cfg.AI.Gemini = loadProvider("ai.gemini", "gemini_api_key")
	cfg.AI.OpenAI = loadProvider("ai.openai", "openai_api_key")

	cfg.Region.CacheSize = viper.GetInt("region.cache_size")
	cfg.RateLimit.ParsePerMinute = viper.GetInt("rate_limit.parse_per_minute")

	return cfg, nil
}

func loadProvider(section, envKey string) ProviderConfig {
	p := ProviderConfig{
		APIKey:  expandEnvVar(viper.GetString(section + ".api_key")),
		Model:   viper.GetString(section + ".model"),
		BaseURL: viper.GetString(section + ".base_url"),
	}
	if key := viper.GetString(envKey); key != "" {
		p.APIKey = key
	}
	return p
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "finbook.db")

	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.poll_interval", "1m")
	viper.SetDefault("scheduler.housekeeping_interval", "24h")
	viper.SetDefault("scheduler.log_retention_days", 30)

	viper.SetDefault("ai.attempt_timeout", "8s")

	viper.SetDefault("region.cache_size", 1024)
	viper.SetDefault("rate_limit.parse_per_minute", 20)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if v := viper.GetString(envVar); v != "" {
			return v
		}
		return os.Getenv(envVar)
	}

	return value
}

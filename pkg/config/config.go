package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Backend struct {
		Type  string `yaml:"type"`
		Table string `yaml:"table"`
	} `yaml:"backend"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Providers struct {
		Pool struct {
			URL    string `yaml:"url"`
			APIKey string `yaml:"api_key"`
		} `yaml:"pool"`
		Feeds []struct {
			Name string `yaml:"name"`
			URL  string `yaml:"url"`
		} `yaml:"feeds"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"providers"`
	Models struct {
		A           ModelConfig   `yaml:"a"`
		B           ModelConfig   `yaml:"b"`
		MaxArticles int           `yaml:"max_articles"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"models"`
	Batch struct {
		Size            int           `yaml:"size"`
		InterBatchDelay time.Duration `yaml:"inter_batch_delay"`
	} `yaml:"batch"`
	Signal struct {
		StrongThreshold   float64 `yaml:"strong_threshold"`
		ModerateThreshold float64 `yaml:"moderate_threshold"`
		WinnerThreshold   float64 `yaml:"winner_threshold"`
	} `yaml:"signal"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// ModelConfig identifies one remote sentiment classifier.
type ModelConfig struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("POOL_API_KEY"); v != "" {
		c.Providers.Pool.APIKey = v
	}
	if v := os.Getenv("MODEL_A_API_KEY"); v != "" {
		c.Models.A.APIKey = v
	}
	if v := os.Getenv("MODEL_B_API_KEY"); v != "" {
		c.Models.B.APIKey = v
	}
	if v := os.Getenv("BACKEND"); v != "" {
		c.Backend.Type = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Providers.Timeout == 0 {
		c.Providers.Timeout = 10 * time.Second
	}
	if c.Models.Timeout == 0 {
		c.Models.Timeout = 15 * time.Second
	}
	if c.Models.MaxArticles == 0 {
		c.Models.MaxArticles = 10
	}
	if c.Batch.Size == 0 {
		c.Batch.Size = 2
	}
	if c.Batch.InterBatchDelay == 0 {
		c.Batch.InterBatchDelay = time.Second
	}
	if c.Signal.StrongThreshold == 0 {
		c.Signal.StrongThreshold = 0.75
	}
	if c.Signal.ModerateThreshold == 0 {
		c.Signal.ModerateThreshold = 0.5
	}
	if c.Signal.WinnerThreshold == 0 {
		c.Signal.WinnerThreshold = 0.8
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
	if c.Backend.Table == "" {
		c.Backend.Table = "predictions"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Backend.Type == "" {
		return fmt.Errorf("backend.type is required")
	}
	if c.Backend.Type != "kafka" && c.Backend.Type != "clickhouse" && c.Backend.Type != "none" {
		return fmt.Errorf("backend.type must be 'kafka', 'clickhouse' or 'none', got '%s'", c.Backend.Type)
	}
	if c.Providers.Pool.URL == "" && len(c.Providers.Feeds) == 0 {
		return fmt.Errorf("at least one content provider is required")
	}
	if c.Models.A.URL == "" || c.Models.B.URL == "" {
		return fmt.Errorf("both model endpoints are required")
	}
	if c.Signal.ModerateThreshold > c.Signal.StrongThreshold {
		return fmt.Errorf("signal.moderate_threshold must not exceed signal.strong_threshold")
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	JWTSecret   string           `json:"jwt_secret"`
	JWTTTLHours int              `json:"jwt_ttl_hours"`
	LogConfig   logger.LogConfig `json:"log_config"`
	Database    DatabaseConfig   `json:"database"`
	FileStore   FileStoreConfig  `json:"file_store"`
	Matching    MatchingConfig   `json:"matching"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type FileStoreConfig struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

type MatchingConfig struct {
	ModelPath string  `json:"model_path"`
	TopK      int     `json:"top_k"`
	MinScore  float64 `json:"min_score"`
	SyncSpec  string  `json:"sync_spec"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Database.DSN == "" && cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.dsn or database.host is required")
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 72
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.FileStore.Type == "" {
		cfg.FileStore.Type = "local"
	}
	if cfg.Matching.TopK == 0 {
		cfg.Matching.TopK = 3
	}
	if cfg.Matching.TopK < 0 {
		return nil, fmt.Errorf("matching.top_k must be positive")
	}
	if cfg.Matching.MinScore == 0 {
		cfg.Matching.MinScore = 0.8
	}
	if cfg.Matching.MinScore < 0 || cfg.Matching.MinScore > 1 {
		return nil, fmt.Errorf("matching.min_score must be within [0,1]")
	}
	if cfg.Matching.SyncSpec == "" {
		cfg.Matching.SyncSpec = "*/15 * * * *"
	}
	return &cfg, nil
}

package config

import (
    "fmt"
    "log"
    "os"

    "gopkg.in/yaml.v3"
)

type Config struct {
    App struct {
        Name           string `yaml:"name"`
        Version        string `yaml:"version"`
        ProblemBaseURL string `yaml:"problem_base_url"`
    } `yaml:"app"`
    Server struct {
        Port         string `yaml:"port"`
        TemplatePath string `yaml:"template_path"`
        StaticPath   string `yaml:"static_path"`
    } `yaml:"server"`
    CORS struct {
        AllowOrigins     string `yaml:"allow_origins"`
        AllowCredentials bool   `yaml:"allow_credentials"`
    } `yaml:"cors"`
    Limiter struct {
        Max               int `yaml:"max"`
        ExpirationSeconds int `yaml:"expiration_seconds"`
    } `yaml:"limiter"`
}

// LoadConfig загружает конфигурацию из config.yaml
// Секретного файла нет: сервис не хранит учётных данных.
func LoadConfig() *Config {
    config, err := LoadConfigFrom("config.yaml")
    if err != nil {
        log.Fatalf("Ошибка загрузки конфигурации: %v", err)
    }

    log.Println("Конфигурация успешно загружена")
    return config
}

// LoadConfigFrom читает YAML по указанному пути и подставляет значения
// по умолчанию для пропущенных секций.
func LoadConfigFrom(path string) (*Config, error) {
    config := &Config{}

    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("чтение %s: %w", path, err)
    }

    if err := yaml.Unmarshal(data, config); err != nil {
        return nil, fmt.Errorf("парсинг %s: %w", path, err)
    }

    applyDefaults(config)
    return config, nil
}

func applyDefaults(config *Config) {
    if config.App.Name == "" {
        config.App.Name = "Creatinine Clearance (CGE) Tool"
    }
    if config.App.Version == "" {
        config.App.Version = "1.0.0"
    }
    if config.Server.Port == "" {
        config.Server.Port = ":8080"
    }
    if config.Server.TemplatePath == "" {
        config.Server.TemplatePath = "./templates"
    }
    if config.Server.StaticPath == "" {
        config.Server.StaticPath = "./static"
    }
    if config.CORS.AllowOrigins == "" {
        // Исходный инструмент разрешал любые источники
        config.CORS.AllowOrigins = "*"
    }
    if config.Limiter.Max <= 0 {
        config.Limiter.Max = 120
    }
    if config.Limiter.ExpirationSeconds <= 0 {
        config.Limiter.ExpirationSeconds = 60
    }
}

package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

type WalletConfig struct {
	KeyFile string        `mapstructure:"key_file"`
	BaseURL string        `mapstructure:"base_url"`
	SaveURL string        `mapstructure:"save_url"`
	Origins []string      `mapstructure:"origins"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RabbitMQConfig struct {
	URL      string              `mapstructure:"url"`
	Exchange string              `mapstructure:"exchange"`
	Queue    RabbitMQQueueConfig `mapstructure:"queue"`
}

type RabbitMQQueueConfig struct {
	Issued string `mapstructure:"issued"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using environment variables")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath("../../../configs")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set service account key path from environment
	if keyFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); keyFile != "" {
		config.Wallet.KeyFile = keyFile
	}

	// Set RabbitMQ URL from environment
	if rabbitURL := os.Getenv("RABBITMQ_URL"); rabbitURL != "" {
		config.RabbitMQ.URL = rabbitURL
	}

	return &config, nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults for the handler options. They match the identifiers the
// functions were first deployed with.
const (
	DefaultPipelineName = "your-pipeline-name"
	DefaultTopicARN     = "arn:aws:sns:us-east-1:940797399432:webhook-email-alert"
	DefaultAlertSubject = "GitHub Webhook Triggered"
	DefaultAlertMessage = "A GitHub push triggered this Lambda via webhook."
)

// ErrInvalidConfig is returned by Validate when a required option is missing or malformed.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	Log         LogConfig
	AWS         AWSConfig
	Pipeline    PipelineConfig
	Alert       AlertConfig
	Server      ServerConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=text json"`
}

// AWSConfig holds the settings used to build AWS service clients
type AWSConfig struct {
	Region          string `validate:"required"`
	Endpoint        string `validate:"omitempty,url"` // e.g. a LocalStack endpoint
	AccessKeyID     string
	SecretAccessKey string `validate:"required_with=AccessKeyID"`
	SessionToken    string
}

// PipelineConfig identifies the pipeline started by the trigger function
type PipelineConfig struct {
	Name string `validate:"required,max=100"`
}

// AlertConfig holds the notification published by the webhook function
type AlertConfig struct {
	TopicARN string `validate:"required,startswith=arn:"`
	// SNS rejects email subjects longer than 100 characters.
	Subject string `validate:"required,max=100"`
	Message string `validate:"required"`
}

// ServerConfig holds settings that only apply to the local HTTP server
type ServerConfig struct {
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gt=0"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("PIPELINE_NAME", DefaultPipelineName)
	viper.SetDefault("ALERT_TOPIC_ARN", DefaultTopicARN)
	viper.SetDefault("ALERT_SUBJECT", DefaultAlertSubject)
	viper.SetDefault("ALERT_MESSAGE", DefaultAlertMessage)
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		AWS: AWSConfig{
			Region:          viper.GetString("AWS_REGION"),
			Endpoint:        viper.GetString("AWS_ENDPOINT_URL"),
			AccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    viper.GetString("AWS_SESSION_TOKEN"),
		},
		Pipeline: PipelineConfig{
			Name: viper.GetString("PIPELINE_NAME"),
		},
		Alert: AlertConfig{
			TopicARN: viper.GetString("ALERT_TOPIC_ARN"),
			Subject:  viper.GetString("ALERT_SUBJECT"),
			Message:  viper.GetString("ALERT_MESSAGE"),
		},
		Server: ServerConfig{
			RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// IsProduction reports whether the application runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

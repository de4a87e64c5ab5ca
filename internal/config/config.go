package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrTokenRequired = errors.New("telegram token is required")

type Config struct {
	Dev               bool          `envconfig:"DEV" default:"false"`
	DBPath            string        `envconfig:"DB_PATH" default:"data/node-notifier.db"`
	SettingsPath      string        `envconfig:"SETTINGS_PATH" default:"config.json"`
	StatusTimeout     time.Duration `envconfig:"STATUS_TIMEOUT" default:"10s"`
	CycleTimeout      time.Duration `envconfig:"CYCLE_TIMEOUT" default:"30s"`
	TelegramTimeout   time.Duration `envconfig:"TELEGRAM_TIMEOUT" default:"15s"`
	SendRate          int           `envconfig:"SEND_RATE" default:"20"`
	AllowedChatIDs    []int64       `envconfig:"ALLOWED_CHAT_IDS"`
	SSMTokenParameter string        `envconfig:"SSM_TOKEN_PARAMETER" default:"/node-notifier/prod/telegram-token"`
	TelegramToken     string        `envconfig:"TELEGRAM_TOKEN"`
}

// NewConfig reads the process configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func NewConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	res := &Config{}
	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	return res, nil
}

// ResolveToken fills TelegramToken when the environment did not provide one. The token
// stored in the settings file is tried first, then the SSM parameter outside of dev mode.
func (c *Config) ResolveToken(ctx context.Context, fromSettings string) error {
	if c.TelegramToken != "" {
		return nil
	}
	if fromSettings != "" {
		c.TelegramToken = fromSettings
		return nil
	}
	if c.Dev {
		return ErrTokenRequired
	}

	token, err := getSSMToken(ctx, c.SSMTokenParameter)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrTokenRequired
	}

	c.TelegramToken = token
	return nil
}

func getSSMToken(ctx context.Context, name string) (string, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}

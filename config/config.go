package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// HTTP listen port
		Port string `env:"SERVER_PORT" envDefault:"3000"`

		// Root directory of the snapshot data lake
		DataPath string `env:"DATA_PATH" envDefault:"housing_data"`

		// Path of the sqlite database holding subscriptions and the ledger
		DBPath string `env:"DB_PATH" envDefault:"database/housinglake.db"`
	}

	// BatchProcessing configuration for the seen-listing ledger writer
	BatchProcessing struct {
		// Maximum number of listing batches buffered before processing
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

		// Number of concurrent batch processors
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
	}

	// Alerts configuration
	Alerts struct {
		// Seconds between alert checker runs
		CheckInterval int `env:"ALERT_CHECK_INTERVAL" envDefault:"300"`

		// Telegram bot token; alerts are disabled when empty
		TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

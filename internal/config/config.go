package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken  string `envconfig:"BOT_TOKEN" required:"true"`
	DBPath    string `envconfig:"DB_PATH" default:"./data/zelar.db"`
	DefaultTZ string `envconfig:"DEFAULT_TZ" default:"America/Sao_Paulo"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":8080"`

	// AI oracle; leave the key empty to run without the escalation step.
	OpenAIKey     string        `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `envconfig:"OPENAI_BASE_URL"`
	OracleModel   string        `envconfig:"ORACLE_MODEL" default:"gpt-4o-mini"`
	OracleTimeout time.Duration `envconfig:"ORACLE_TIMEOUT" default:"15s"`

	// How long before an event its reminder goes out.
	ReminderLead time.Duration `envconfig:"REMINDER_LEAD" default:"1h"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

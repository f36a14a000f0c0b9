package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone — рабочая таймзона сервиса, устанавливается в NewConfig.
// Все метки времени без явной таймзоны трактуются в ней.
var TimeZone = time.UTC

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/New_York"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"booking_service:booking_service"`
		BasicClients       []ConfigBasicClient
	}

	// Параметры движка доступности: рабочие часы одного ресурса,
	// шаг сетки слотов и горизонт поиска свободного дня
	Booking struct {
		BusinessStartHour  int `env:"BOOKING_BUSINESS_START_HOUR" envDefault:"9"`
		BusinessEndHour    int `env:"BOOKING_BUSINESS_END_HOUR" envDefault:"17"`
		GranularityMinutes int `env:"BOOKING_GRANULARITY_MINUTES" envDefault:"30"`
		DefaultDuration    int `env:"BOOKING_DEFAULT_DURATION_MINUTES" envDefault:"30"`
		MaxLookaheadDays   int `env:"BOOKING_MAX_LOOKAHEAD_DAYS" envDefault:"14"`
	}

	GoogleCalendar struct {
		CalendarID      string `env:"GOOGLE_CALENDAR_ID" envDefault:"primary"`
		CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`
		TokenFile       string `env:"GOOGLE_TOKEN_FILE" envDefault:"token.json"`
	}

	RabbitMq struct {
		Enabled   bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri   string `env:"RABBITMQ_URL"`
		Queue     string `env:"RABBITMQ_QUEUE" envDefault:"booking.operations"`
		Exchange  string `env:"RABBITMQ_EXCHANGE" envDefault:"booking"`
		QueueBind string `env:"RABBITMQ_QUEUE_BIND" envDefault:"booking.operations.#"`
		DedupSize int    `env:"RABBITMQ_DEDUP_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Рабочие часы должны образовывать непустое окно внутри суток
	if cfg.Booking.BusinessStartHour < 0 || cfg.Booking.BusinessEndHour > 24 ||
		cfg.Booking.BusinessStartHour >= cfg.Booking.BusinessEndHour {
		return nil, fmt.Errorf("invalid business hours: %d..%d",
			cfg.Booking.BusinessStartHour, cfg.Booking.BusinessEndHour)
	}
	if cfg.Booking.GranularityMinutes <= 0 {
		return nil, fmt.Errorf("invalid slot granularity: %d", cfg.Booking.GranularityMinutes)
	}

	// Разбираем пары логин:пароль для basic auth
	cfg.Auth.BasicClients = []ConfigBasicClient{}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Загружаем рабочую таймзону
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %v", cfg.App.Timezone, err)
	}
	TimeZone = location

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}

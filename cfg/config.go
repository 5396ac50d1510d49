package cfg

import (
	"strconv"
	"strings"

	"github.com/jinzhu/configor"
	"github.com/pkg/errors"
)

type Config struct {
	BotToken string `env:"BOT_TOKEN" required:"true"`
	BotLink  string `env:"BOT_LINK" default:"https://t.me/gadalka_bot"`

	AdminIDsString string `env:"ADMIN_IDS"`
	AdminIDs       []int64

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" default:"ru"`
	DailyFreeLimit  int    `env:"DAILY_FREE_LIMIT" default:"5"`

	Transport TransportConfig
	DB        DBConfig
	Redis     RedisConfig

	MetricsPort int `env:"METRICS_PORT" default:"7011"`
}

type TransportConfig struct {
	// Mode is either "longpoll" or "webhook".
	Mode          string `env:"TRANSPORT_MODE" default:"longpoll"`
	WebhookURL    string `env:"WEBHOOK_URL"`
	WebhookListen string `env:"WEBHOOK_LISTEN" default:":8443"`
}

type DBConfig struct {
	Host     string `env:"DBHOST" default:"localhost"`
	Port     uint   `env:"DBPORT" default:"5432"`
	User     string `env:"DBUSERNAME" default:"postgres"`
	Password string `env:"DBPASSWORD"`
	DataBase string `env:"DBNAME" default:"gadalka"`
	SSLMode  string `env:"DBSSL" default:"disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" default:"127.0.0.1:6379"`
}

func Load() (*Config, error) {
	var config Config
	if err := configor.Load(&config); err != nil {
		return nil, errors.Wrap(err, "load config from environment")
	}

	if config.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is not set in environment")
	}

	adminIDs, err := parseAdminIDs(config.AdminIDsString)
	if err != nil {
		return nil, errors.Wrap(err, "parse ADMIN_IDS")
	}
	config.AdminIDs = adminIDs

	if config.Transport.Mode == "webhook" && config.Transport.WebhookURL == "" {
		return nil, errors.New("WEBHOOK_URL is required in webhook mode")
	}

	return &config, nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid admin id %q", part)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

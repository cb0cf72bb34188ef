package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix namespaces every environment variable, e.g. STOREFRONT_HTTP_PORT.
const EnvPrefix = "STOREFRONT"

type Config struct {
	HTTPPort        int           `mapstructure:"http_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     int    `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	// ValkeyAddr empty disables the zone cache.
	ValkeyAddr         string        `mapstructure:"valkey_addr"`
	ZoneCacheTTL       time.Duration `mapstructure:"zone_cache_ttl"`
	ZoneWarmupSchedule string        `mapstructure:"zone_warmup_schedule"`

	// NATSURL empty disables order events.
	NATSURL string `mapstructure:"nats_url"`

	WhatsAppNumber string `mapstructure:"whatsapp_number"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Locale         string `mapstructure:"locale"`

	SessionTTL           time.Duration `mapstructure:"session_ttl"`
	SessionSweepSchedule string        `mapstructure:"session_sweep_schedule"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// LoadConfig reads an optional .env file, then STOREFRONT_* variables over
// the defaults below, and validates the result.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetDefault("http_port", 8080)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "storefront")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "storefront")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("valkey_addr", "")
	v.SetDefault("zone_cache_ttl", 10*time.Minute)
	v.SetDefault("zone_warmup_schedule", "0 */5 * * * *")
	v.SetDefault("nats_url", "")
	v.SetDefault("whatsapp_number", "")
	v.SetDefault("currency_symbol", "$")
	v.SetDefault("locale", "en")
	v.SetDefault("session_ttl", 2*time.Hour)
	v.SetDefault("session_sweep_schedule", "0 * * * * *")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("http_port", c.HTTPPort, 1, 65535))
	}
	if c.DBHost == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("db_host"))
	}
	if c.DBPort <= 0 || c.DBPort > 65535 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("db_port", c.DBPort, 1, 65535))
	}
	if c.DBUser == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("db_user"))
	}
	if c.DBName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("db_name"))
	}
	if strings.TrimSpace(c.WhatsAppNumber) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("whatsapp_number"))
	}
	if _, langErr := language.Parse(c.Locale); langErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("locale", langErr))
	}
	if c.SessionTTL <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("session_ttl", fmt.Errorf("%s is not positive", c.SessionTTL)))
	}
	if c.ValkeyAddr != "" && c.ZoneCacheTTL <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("zone_cache_ttl", fmt.Errorf("%s is not positive", c.ZoneCacheTTL)))
	}

	return err
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

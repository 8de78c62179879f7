package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config настройки сервиса; читаются из переменных окружения BAKERY_*
// и необязательного .env файла
type Config struct {
	HTTPAddr        string
	BackendURL      string
	CatalogPath     string
	BackendTimeout  time.Duration
	ImageBasePath   string
	WhatsAppPhone   string
	AdminUser       string
	AdminPassword   string
	RedisAddr       string
	SnapshotTTL     time.Duration
	SessionIdleTTL  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	Dev             bool
}

// AdminEnabled admin routes are only mounted with a full credential pair
func (c *Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPassword != ""
}

func defaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":9091")
	v.SetDefault("backend_url", "http://localhost:5000")
	v.SetDefault("catalog_path", "/api/Catalogo")
	v.SetDefault("backend_timeout", 10*time.Second)
	v.SetDefault("image_base_path", "/images")
	v.SetDefault("whatsapp_phone", "")
	v.SetDefault("admin_user", "")
	v.SetDefault("admin_password", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("snapshot_ttl", 24*time.Hour)
	v.SetDefault("session_idle_ttl", 2*time.Hour)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("dev", false)
}

// Load читает .env (если есть), затем окружение. Уже выставленные переменные
// окружения имеют приоритет над .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("BAKERY")
	v.AutomaticEnv()
	defaults(v)

	cfg := &Config{
		HTTPAddr:        v.GetString("http_addr"),
		BackendURL:      v.GetString("backend_url"),
		CatalogPath:     v.GetString("catalog_path"),
		BackendTimeout:  v.GetDuration("backend_timeout"),
		ImageBasePath:   v.GetString("image_base_path"),
		WhatsAppPhone:   v.GetString("whatsapp_phone"),
		AdminUser:       v.GetString("admin_user"),
		AdminPassword:   v.GetString("admin_password"),
		RedisAddr:       v.GetString("redis_addr"),
		SnapshotTTL:     v.GetDuration("snapshot_ttl"),
		SessionIdleTTL:  v.GetDuration("session_idle_ttl"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log_level"),
		Dev:             v.GetBool("dev"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid BAKERY_BACKEND_URL %q", c.BackendURL)
	}
	if c.BackendTimeout <= 0 {
		return errors.New("BAKERY_BACKEND_TIMEOUT must be positive")
	}
	if (c.AdminUser == "") != (c.AdminPassword == "") {
		return errors.New("BAKERY_ADMIN_USER and BAKERY_ADMIN_PASSWORD must be set together")
	}
	return nil
}

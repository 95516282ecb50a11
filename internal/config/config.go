package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig contains the PostgreSQL connection settings.
// When URL is set it takes precedence over the individual fields.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"      validate:"omitempty,url"`
	Host     string `mapstructure:"host"     validate:"required_without=URL"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	User     string `mapstructure:"user"     validate:"required_without=URL"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"     validate:"required_without=URL"`
	SSLMode  string `mapstructure:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"   validate:"gt=0"`

	// TraceQueries logs every statement at debug level.
	TraceQueries bool `mapstructure:"trace_queries"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// DSN returns the connection string for the database.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}

	return u.String()
}

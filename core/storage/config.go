package storage

import (
	"strings"
	"time"
)

// Config describes the S3 or MinIO bucket holding seed sources and run reports.
type Config struct {
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL forces TLS. An https:// endpoint enables it as well.
	UseSSL bool   `mapstructure:"use_ssl" default:"false"`
	Bucket string `mapstructure:"bucket" default:"seed-data"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Address returns the endpoint without its scheme.
func (c Config) Address() string {
	addr := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(addr, "https://")
}

// Secure reports whether requests use TLS.
func (c Config) Secure() bool {
	return c.UseSSL || strings.HasPrefix(c.Endpoint, "https://")
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

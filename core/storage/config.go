package storage

import "strings"

// Config holds the object storage settings for item meshes and the
// published catalog.
type Config struct {
	// Endpoint is host:port, optionally with an http:// or https:// scheme.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL forces TLS. An https:// endpoint enables it as well.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the meshes, keyed by item path without the leading "/".
	Bucket string `mapstructure:"bucket" default:"assets"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without its scheme, as minio expects it.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Secure reports whether connections use TLS.
func (c Config) Secure() bool {
	return c.UseSSL || strings.HasPrefix(c.Endpoint, "https://")
}

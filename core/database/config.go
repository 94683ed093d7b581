package database

import (
	"fmt"
	"time"
)

// Config holds the connection settings of the session database. With the
// sqlite driver only Name is used, as the database file path.
type Config struct {
	// Driver is mysql or sqlite.
	Driver   string `mapstructure:"driver" default:"mysql"`
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	Name     string `mapstructure:"name" default:"armory"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout returns TimeoutSeconds as a duration, 10s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Target describes the database for log lines without the password.
func (c Config) Target() string {
	if c.Driver == DriverSQLite {
		return "sqlite:" + c.Name
	}
	return fmt.Sprintf("mysql://%s@%s:%d/%s", c.User, c.Host, c.Port, c.Name)
}

package server_test

import (
	"testing"
	"time"

	"armory/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Port Only", "8080", ":8080"},
		{"Host And Port", "127.0.0.1:9090", "127.0.0.1:9090"},
		{"Leading Colon", ":3000", ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, server.Config{}.Timeout())
	assert.Equal(t, 5*time.Second, server.Config{TimeoutSeconds: 5}.Timeout())
}

func TestConfig_AuthEnabled(t *testing.T) {
	assert.False(t, server.Config{}.AuthEnabled())
	assert.True(t, server.Config{ApiKey: "secret"}.AuthEnabled())
}

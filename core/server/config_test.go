package server_test

import (
	"testing"

	"bulk-seeder/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Configured", "9090", ":9090"},
		{"Empty", "", ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

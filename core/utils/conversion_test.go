package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "u1", "u1"},
		{"bytes", []byte("abc"), "abc"},
		{"whole float", float64(12), "12"},
		{"fraction", 1.5, "1.5"},
		{"int", 7, "7"},
		{"int64", int64(-3), "-3"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToKB(t *testing.T) {
	assert.Equal(t, 0.0, ToKB(0))
	assert.Equal(t, 1.0, ToKB(1024))
	assert.Equal(t, 0.12, ToKB(123))
	assert.Equal(t, 2.5, ToKB(2560))
}

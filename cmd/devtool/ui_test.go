package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHostile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain flag", "--version", false},
		{"url with query", "http://localhost:8080/api?a=1&b=2", false},
		{"pipe", "go | sh", true},
		{"substitution", "$(rm -rf /)", true},
		{"newline", "version\nrm", true},
		{"redirect", "out > /etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkHostile(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

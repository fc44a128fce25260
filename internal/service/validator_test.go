package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDestination(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://example.com/path", false},
		{"valid http", "http://example.com", false},
		{"valid with port", "https://example.com:8443/path?q=1", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"ftp scheme", "ftp://example.com", true},
		{"no scheme", "example.com/path", true},
		{"no host", "https:///path", true},
		{"localhost", "http://localhost/admin", true},
		{"localhost with port", "http://localhost:8080/admin", true},
		{"loopback", "http://127.0.0.1/metrics", true},
		{"unspecified", "http://0.0.0.0/", true},
		{"private 10/8", "http://10.1.2.3/path", true},
		{"private 172.16/12", "http://172.16.0.1/", true},
		{"private 192.168/16", "http://192.168.1.1/router", true},
		{"public ip", "http://8.8.8.8/", false},
		{"too long", "https://example.com/" + strings.Repeat("a", 3000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDestination(tt.url)
			if tt.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr, "expected ValidationError for %q", tt.url)
			} else {
				assert.NoError(t, err, "expected %q to be accepted", tt.url)
			}
		})
	}
}

func TestValidateDestinationAtLengthBoundary(t *testing.T) {
	base := "https://example.com/"
	exact := base + strings.Repeat("a", maxDestinationLength-len(base))
	assert.NoError(t, ValidateDestination(exact))
	assert.Error(t, ValidateDestination(exact+"a"))
}

package service

import (
	"net"
	"net/url"
	"strings"
)

// Destinations longer than this are rejected outright.
const maxDestinationLength = 2048

// ValidateDestination enforces the acceptance policy for destination URLs:
// absolute http/https with a host, bounded length, and no
// localhost/loopback/private-range hosts. Blocking internal addresses keeps
// the service from being used for network probing via open redirect.
func ValidateDestination(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{Reason: "URL cannot be empty"}
	}
	if len(raw) > maxDestinationLength {
		return &ValidationError{Reason: "URL exceeds maximum length of 2048 characters"}
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return &ValidationError{Reason: "malformed URL"}
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return &ValidationError{Reason: "only http and https protocols are allowed"}
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return &ValidationError{Reason: "URL must contain a host"}
	}
	if host == "localhost" {
		return &ValidationError{Reason: "localhost and loopback addresses are not allowed"}
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsUnspecified() {
			return &ValidationError{Reason: "localhost and loopback addresses are not allowed"}
		}
		if ip.IsPrivate() || ip.IsLinkLocalUnicast() {
			return &ValidationError{Reason: "private IP addresses are not allowed"}
		}
	}

	return nil
}

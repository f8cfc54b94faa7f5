package utils

import "testing"

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		origin  string
		allowed bool
	}{
		// Allowed: localhost and loopback
		{"http://localhost", true},
		{"http://localhost:8080", true},
		{"http://127.0.0.1:3000", true},
		{"http://[::1]:8080", true},

		// Allowed: private IPs
		{"http://192.168.1.20", true},
		{"http://10.0.0.5:8080", true},
		{"http://172.16.0.1", true},

		// Allowed: link-local
		{"http://169.254.1.1", true},

		// Allowed: mDNS and single-label LAN names
		{"http://mynas.local", true},
		{"http://podbox:8080", true},

		// Blocked: public domains and IPs
		{"https://example.com", false},
		{"http://podcast-api.netlify.app", false},
		{"http://8.8.8.8", false},

		// Blocked: empty/invalid
		{"", false},
		{"not-a-url", false},
	}

	for _, tt := range tests {
		got := IsAllowedOrigin(tt.origin)
		if got != tt.allowed {
			t.Errorf("IsAllowedOrigin(%q) = %v, want %v", tt.origin, got, tt.allowed)
		}
	}
}

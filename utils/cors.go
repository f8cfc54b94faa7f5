package utils

import (
	"net"
	"net/url"
	"strings"
)

// IsAllowedOrigin reports whether an Origin header value should be trusted
// for CORS. The directory is meant to run on a home network, so localhost,
// private/link-local IPs, .local hostnames, and single-label LAN names are
// allowed; public internet origins are not.
func IsAllowedOrigin(origin string) bool {
	if origin == "" {
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	hostname := parsed.Hostname()
	switch {
	case hostname == "localhost":
		return true
	case strings.HasSuffix(hostname, ".local"):
		return true
	case !strings.Contains(hostname, "."):
		// Single-label hostname, e.g. a LAN machine name.
		return true
	}

	if ip := net.ParseIP(hostname); ip != nil {
		return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
	}
	return false
}

package common

import (
	"net"
	"net/http"
	"strings"
)

// IsLocalOrPrivateRequestHost reports whether the request reached us on a
// localhost or private-network host. Local dev gets relaxed treatment from
// both the embedding middleware and the test-stream player, so the check
// lives here and prefers X-Forwarded-Host when a proxy sets it.
func IsLocalOrPrivateRequestHost(r *http.Request) bool {
	hostHeader := strings.TrimSpace(r.Header.Get("X-Forwarded-Host"))
	if hostHeader == "" {
		hostHeader = strings.TrimSpace(r.Host)
	}
	if hostHeader == "" {
		return false
	}

	host := hostHeader
	if h, _, err := net.SplitHostPort(hostHeader); err == nil {
		host = h
	}
	host = strings.ToLower(host)

	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate()
}

// Package metadata extracts client metadata (IP, User-Agent, device summary)
// into the request context. Apply early in the chain.
package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"tadipaar/pkg/requestcontext"
)

// ClientMetadata stores client IP, raw User-Agent, and a human-readable
// device summary in the context. The device summary ends up on check-in logs
// so station officers can see what a hazari was submitted from.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), ua)
		ctx = requestcontext.WithDevice(ctx, DeviceSummary(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DeviceSummary condenses a User-Agent into "OS / Browser version". Unknown
// agents yield "unknown".
func DeviceSummary(rawUA string) string {
	if rawUA == "" {
		return "unknown"
	}
	parsed := useragent.New(rawUA)
	name, version := parsed.Browser()
	os := parsed.OS()
	switch {
	case os == "" && name == "":
		return "unknown"
	case os == "":
		return strings.TrimSpace(name + " " + version)
	case name == "":
		return os
	default:
		return os + " / " + strings.TrimSpace(name+" "+version)
	}
}

// ClientIPFromRequest extracts the real client IP, handling proxies and load
// balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For may contain "client, proxy1, proxy2"; the first entry
	// is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" (or "[::1]:port" for IPv6).
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}

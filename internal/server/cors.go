package server

import (
	"log/slog"
	"net/url"
	"strings"
)

// NewOriginChecker returns the origin predicate for credentialed CORS.
// An origin is allowed if it exactly matches one of the configured origins,
// or its host ends with the configured suffix (deploy previews of the
// frontend). When isDevelopment is true, localhost origins are additionally
// allowed. Everything else is rejected before any handler runs.
func NewOriginChecker(allowed []string, suffix string, isDevelopment bool) func(origin string) (bool, error) {
	return func(origin string) (bool, error) {
		for _, a := range allowed {
			if origin == a {
				return true, nil
			}
		}

		if suffix != "" && strings.HasSuffix(originHost(origin), suffix) {
			return true, nil
		}

		if isDevelopment && isLocalhostOrigin(origin) {
			return true, nil
		}

		slog.Warn("CORS origin rejected", "origin", origin)
		return false, nil
	}
}

func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func isLocalhostOrigin(origin string) bool {
	host := originHost(origin)
	return host == "localhost" || host == "127.0.0.1"
}

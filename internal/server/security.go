package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sendrec/resources/internal/httputil"
)

// DefaultFrameSources are the origins the playback overlay may embed.
var DefaultFrameSources = []string{"https://www.youtube.com", "https://www.youtube-nocookie.com"}

type SecurityConfig struct {
	BaseURL      string
	FrameSources []string
}

func securityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	strictTransport := strings.HasPrefix(cfg.BaseURL, "https://")

	frameSources := cfg.FrameSources
	if len(frameSources) == 0 {
		frameSources = DefaultFrameSources
	}
	frameSrc := strings.Join(frameSources, " ")
	autoplayOrigins := make([]string, 0, len(frameSources))
	for _, origin := range frameSources {
		autoplayOrigins = append(autoplayOrigins, `"`+origin+`"`)
	}
	permissions := "camera=(), microphone=(), geolocation=(), autoplay=(self " + strings.Join(autoplayOrigins, " ") + ")"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nonce := httputil.GenerateNonce()
			ctx := httputil.ContextWithNonce(r.Context(), nonce)

			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("Permissions-Policy", permissions)

			csp := fmt.Sprintf(
				"default-src 'self'; img-src 'self' data: https:; frame-src %s; script-src 'self'; style-src 'self' 'nonce-%s'; connect-src 'self'; frame-ancestors 'self';",
				frameSrc, nonce,
			)
			w.Header().Set("Content-Security-Policy", csp)

			if strictTransport {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

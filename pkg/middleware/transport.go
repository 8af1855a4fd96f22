// Package middleware contém os wrappers de transporte e execução usados pela CLI.
package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

// SlowRequestThreshold é a duração a partir da qual uma chamada é registrada como lenta
const SlowRequestThreshold = 5 * time.Second

// roundTripperFunc adapta uma função para http.RoundTripper
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Logging registra cada chamada HTTP de saída (método, caminho, status e duração).
// A query nunca é registrada porque carrega o access_token
func Logging(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		startTime := time.Now()

		resp, err := next.RoundTrip(r)

		responseTime := time.Since(startTime)
		fields := log.Fields{
			"method":      r.Method,
			"path":        strings.TrimPrefix(r.URL.Path, "/"),
			"duration_ms": responseTime.Milliseconds(),
		}
		logger := log.ForContext(r.Context())

		if err != nil {
			logger.WithFields(fields).WithError(err).Debug("Chamada HTTP falhou")
			return nil, err
		}

		fields["status_code"] = resp.StatusCode
		logger = logger.WithFields(fields)

		if resp.StatusCode >= 400 {
			logger.Debug("✗ Completada em " + formatDuration(responseTime))
		} else {
			logger.Debug("✓ Completada em " + formatDuration(responseTime))
		}

		if responseTime > SlowRequestThreshold {
			logger.Warnf("Requisição lenta: %s %s (%s)", r.Method, r.URL.Path, formatDuration(responseTime))
		}

		return resp, nil
	})
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

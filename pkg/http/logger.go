package http

import (
	"net/url"

	"go.uber.org/zap"

	"go-weather/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string, map[string]string, string) {}

func (NopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (NopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound calls through pkg/log. Query parameters named in redact are masked.
type ZapLogger struct {
	redact []string
}

// NewZapLogger creates a ZapLogger masking the given query parameters (e.g. "appid").
func NewZapLogger(redact ...string) *ZapLogger {
	return &ZapLogger{redact: redact}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string, _ string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)))
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Info("outbound request completed",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, rawURL string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}

func (l *ZapLogger) mask(rawURL string) string {
	if len(l.redact) == 0 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := u.Query()
	for _, key := range l.redact {
		if query.Has(key) {
			query.Set(key, "***")
		}
	}
	u.RawQuery = query.Encode()
	return u.String()
}

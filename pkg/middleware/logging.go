package middleware

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-planning-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o id usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra uma linha por requisição com status, duração e recurso acessado
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			rw := newResponseRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(rw, r)

			duration := time.Since(startTime)
			resource, recordID := resourceFromPath(r.URL.Path)

			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
				"bytes":       rw.bytes,
			}
			if resource != "" {
				fields["resource"] = resource
			}
			if recordID != "" {
				fields["record_id"] = recordID
			}
			if !log.IsDevelopment() {
				fields["remote_addr"] = r.RemoteAddr
				fields["query"] = r.URL.RawQuery
				fields["user_agent"] = r.UserAgent()
			}

			logger := log.ForContext(ctx).WithFields(fields)

			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case rw.statusCode >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			case resource == "healthcheck":
				logger.Debug("Healthcheck respondido")
			default:
				logger.Info("Requisição finalizada")
			}

			if duration > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

// resourceFromPath extrai a coleção e o id de caminhos como /v1/contracts/:id/total-value
func resourceFromPath(path string) (resource string, recordID string) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) > 0 && segments[0] == "v1" {
		segments = segments[1:]
	}
	if len(segments) == 0 || segments[0] == "" {
		return "", ""
	}

	resource = segments[0]
	switch resource {
	case "contracts", "negotiations":
		if len(segments) > 1 && segments[1] != "by-vertical" {
			recordID = segments[1]
		}
	case "marketing", "team":
		// /v1/marketing/strategies/:id, /v1/team/members/:id, /v1/team/needs/:id
		if len(segments) > 1 {
			resource = resource + "/" + segments[1]
		}
		if len(segments) > 2 {
			recordID = segments[2]
		}
	}

	return resource, recordID
}

// responseRecorder captura status e tamanho da resposta
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	bytes       int
	wroteHeader bool
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseRecorder) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseRecorder) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  recovered,
					"method": r.Method,
					"path":   r.URL.Path,
				})
				logger.Error("Panic durante o processamento da requisição")
				logger.WithField("stack_trace", string(stack)).Debug("Stack trace do panic")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, "localhost:4318", cfg.Endpoint)
	assert.Equal(t, "go-view", cfg.ServiceName)
	assert.True(t, cfg.Enabled())
}

func TestConfig_EndpointURL(t *testing.T) {
	type tc struct {
		endpoint string
		want     string
	}

	tests := map[string]tc{
		"host and port":  {endpoint: "localhost:4318", want: "http://localhost:4318/v1/traces"},
		"http url":       {endpoint: "http://localhost:4318", want: "http://localhost:4318/v1/traces"},
		"trailing slash": {endpoint: "http://localhost:4318/", want: "http://localhost:4318/v1/traces"},
		"https url":      {endpoint: "https://collector:4318/v1/traces", want: "https://collector:4318/v1/traces"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Endpoint: tt.endpoint}.EndpointURL())
		})
	}
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_ExportsSpans(t *testing.T) {
	type tc struct {
		endpoint func(srv *httptest.Server) string
	}

	tests := map[string]tc{
		"url": {endpoint: func(srv *httptest.Server) string { return srv.URL }},
		"host and port": {endpoint: func(srv *httptest.Server) string {
			return strings.TrimPrefix(srv.URL, "http://")
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var hits atomic.Int32
			var path atomic.Value
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				path.Store(r.URL.Path)
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			prev := otel.GetTracerProvider()
			t.Cleanup(func() { otel.SetTracerProvider(prev) })

			ctx := context.Background()
			shutdown, err := Setup(ctx, Config{Endpoint: tt.endpoint(srv), ServiceName: "test"})
			require.NoError(t, err)

			_, span := otel.Tracer("telemetry-test").Start(ctx, "render")
			span.End()

			require.NoError(t, shutdown(ctx))
			assert.GreaterOrEqual(t, hits.Load(), int32(1))
			assert.Equal(t, "/v1/traces", path.Load())
		})
	}
}

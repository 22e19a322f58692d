package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		timeout  time.Duration
		expected time.Duration
	}{
		{"explicit timeout", 3 * time.Second, 3 * time.Second},
		{"zero falls back to default", 0, defaultTimeout},
		{"negative falls back to default", -time.Second, defaultTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.timeout)

			assert.Equal(t, tt.expected, c.Timeout)
			tr, ok := c.Transport.(*http.Transport)
			require.True(t, ok)
			assert.Equal(t, tt.expected, tr.ResponseHeaderTimeout)
			assert.NotNil(t, tr.Proxy)
		})
	}
}

func TestNewHTTPClient_TimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	_, err := NewHTTPClient(50 * time.Millisecond).Get(srv.URL)

	assert.Error(t, err)
}

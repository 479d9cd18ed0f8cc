package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/shesafe/internal/pkg/circuitbreaker"
	"github.com/piresc/shesafe/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetrier() *retry.Retrier {
	return retry.New(retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}, nil)
}

func TestClient_PostForm(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
		wantErr   bool
		wantCode  int
	}{
		{name: "created", statuses: []int{http.StatusCreated}, wantCalls: 1, wantCode: http.StatusCreated},
		{name: "retries server errors", statuses: []int{http.StatusBadGateway, http.StatusCreated}, wantCalls: 2, wantCode: http.StatusCreated},
		{name: "client error is permanent", statuses: []int{http.StatusBadRequest}, wantCalls: 1, wantErr: true},
		{name: "gives up", statuses: []int{500, 500, 500, 500}, wantCalls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "AC123", user)
				assert.Equal(t, "token", pass)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "+15550100", r.PostForm.Get("To"))
				w.WriteHeader(tt.statuses[n-1])
				_, _ = w.Write([]byte(`{"sid":"SM1"}`))
			}))
			defer srv.Close()

			client := NewClient(srv.URL+"/", time.Second, testRetrier(), nil)

			// Act
			resp, err := client.PostForm(context.Background(), "/Messages.json",
				url.Values{"To": {"+15550100"}}, &BasicAuth{Username: "AC123", Password: "token"})

			// Assert
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.JSONEq(t, `{"sid":"SM1"}`, string(resp.Body))
		})
	}
}

func TestClient_PostForm_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	breaker := circuitbreaker.New(circuitbreaker.Config{Name: "sms", FailureThreshold: 1, Timeout: time.Minute})
	client := NewClient(srv.URL, time.Second, nil, breaker)

	_, err := client.PostForm(context.Background(), "/", url.Values{}, nil)
	require.Error(t, err)
	_, err = client.PostForm(context.Background(), "/", url.Values{}, nil)

	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, int32(1), calls.Load())
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(&HTTPError{StatusCode: 401}))
	assert.False(t, IsClientError(&HTTPError{StatusCode: 503}))
	assert.False(t, IsClientError(nil))
}

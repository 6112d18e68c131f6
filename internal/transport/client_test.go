package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

// TestGetSendsUserAgent tests that every request identifies the tool.
func TestGetSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[{"hex":"#112233"}]`))
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()))
	body, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `[{"hex":"#112233"}]`, string(body))
	assert.Equal(t, constants.DefaultUserAgent, gotUA)
}

// TestGetCustomUserAgent tests the user agent option.
func TestGetCustomUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()), WithUserAgent("pantone-builder/1.0"))
	_, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "pantone-builder/1.0", gotUA)
}

// TestGetHTTPStatusError tests that non-2xx answers are API errors.
func TestGetHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()))
	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.True(t, errors.IsSourceUnavailable(err))
}

// TestGetTimeout tests that a slow server trips the client timeout.
func TestGetTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	hc := srv.Client()
	hc.Timeout = 50 * time.Millisecond
	c := New(WithHTTPClient(hc))

	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(err), "got %v", err)
}

// TestGetUnreachable tests that connection failures are wrapped resource errors.
func TestGetUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(WithTimeout(time.Second))
	_, err := c.Get(context.Background(), url)
	require.Error(t, err)

	var resErr *errors.ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "fetch", resErr.Operation)
}

// TestWithRateHonoursContext tests that pacing waits are cancellable.
func TestWithRateHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()), WithRate(0.001))
	_, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err, "first request uses the burst token")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Get(ctx, srv.URL)
	require.Error(t, err)
}

// TestOptions tests option defaults and overrides.
func TestOptions(t *testing.T) {
	c := New()
	assert.Equal(t, constants.DefaultFetchTimeout, c.Timeout())
	assert.Contains(t, c.String(), "paced=false")

	c = New(WithTimeout(3*time.Second), WithRate(2), WithUserAgent(""))
	assert.Equal(t, 3*time.Second, c.Timeout())
	assert.Contains(t, c.String(), constants.DefaultUserAgent)
	assert.Contains(t, c.String(), "paced=true")
}

// TestGetRejectsOversizedBody tests that a body over the limit fails instead
// of being truncated.
func TestGetRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"hex":"#112233"},{"hex":"#445566"}]`))
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()), WithMaxResponseBytes(16))
	body, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Nil(t, body)
	assert.ErrorIs(t, err, errors.ErrResponseTooLarge)
	assert.Contains(t, err.Error(), "more than 16 bytes")

	exact := New(WithHTTPClient(srv.Client()), WithMaxResponseBytes(37))
	body, err = exact.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, 37)
}

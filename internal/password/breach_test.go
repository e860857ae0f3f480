package password

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stayadmin-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breachClient(t *testing.T, endpoint string, failOpen bool) *Client {
	t.Helper()
	return NewClient(&config.BreachConfig{
		Endpoint: endpoint,
		Timeout:  time.Second,
		FailOpen: failOpen,
	})
}

func digestParts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := fmt.Sprintf("%X", sum)
	return digest[:5], digest[5:]
}

func TestCheckBreached(t *testing.T) {
	const candidate = "Password1!"
	prefix, suffix := digestParts(candidate)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+prefix, r.URL.Path)
		fmt.Fprintf(w, "0000000000000000000000000000000000A:12\r\n%s:4821\r\nFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF:1\r\n", suffix)
	}))
	defer srv.Close()

	breached, err := breachClient(t, srv.URL, false).Check(context.Background(), candidate)
	require.NoError(t, err)
	assert.True(t, breached)
}

func TestCheckBreachedSuffixCaseInsensitive(t *testing.T) {
	const candidate = "Password1!"
	_, suffix := digestParts(candidate)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s:7\r\n", strings.ToLower(suffix))
	}))
	defer srv.Close()

	breached, err := breachClient(t, srv.URL, false).Check(context.Background(), candidate)
	require.NoError(t, err)
	assert.True(t, breached)
}

func TestCheckClean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0000000000000000000000000000000000A:12\r\nFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF:1\r\n")
	}))
	defer srv.Close()

	breached, err := breachClient(t, srv.URL, false).Check(context.Background(), "Password1!")
	require.NoError(t, err)
	assert.False(t, breached)
}

func TestCheckFailOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	breached, err := breachClient(t, srv.URL, true).Check(context.Background(), "Password1!")
	require.NoError(t, err)
	assert.False(t, breached)
}

func TestCheckFailClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := breachClient(t, srv.URL, false).Check(context.Background(), "Password1!")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCheckFailClosedUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := breachClient(t, srv.URL, false).Check(context.Background(), "Password1!")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

package password

import (
	"bufio"
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"stayadmin-service/pkg/config"
	"stayadmin-service/pkg/logger"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ErrUnavailable is returned when the breach service cannot answer and
// the configured policy is fail-closed.
var ErrUnavailable = errors.New("password breach check unavailable")

// Client queries a k-anonymity breach-password range service. Only the
// first five characters of the password's SHA-1 digest are transmitted;
// the suffix match happens locally, so neither the password nor its full
// hash ever leaves the process.
type Client struct {
	endpoint string
	http     *http.Client
	cb       *gobreaker.CircuitBreaker
	failOpen bool
}

// NewClient builds a breach-check client from configuration
func NewClient(cfg *config.BreachConfig) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		failOpen: cfg.FailOpen,
		cb: gobreaker.NewCircuitBreaker(
			gobreaker.Settings{
				Name:        "breach-check",
				MaxRequests: 1,
				Timeout:     10 * time.Second,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					return counts.ConsecutiveFailures > 2
				},
				OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
					logger.GetLogger().Warn("Circuit breaker state changed",
						zap.String("name", name),
						zap.String("from", from.String()),
						zap.String("to", to.String()))
				},
			},
		),
	}
}

// Check reports whether the password appears in the breach corpus. A
// transport failure is an unknown answer: with fail-open the password is
// treated as not breached, with fail-closed the operation is rejected
// with ErrUnavailable.
func (c *Client) Check(ctx context.Context, password string) (bool, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.lookup(ctx, password)
	})
	if err != nil {
		if c.failOpen {
			logger.GetLogger().Warn("Breach check failed, proceeding as not breached", zap.Error(err))
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return result.(bool), nil
}

func (c *Client) lookup(ctx context.Context, password string) (bool, error) {
	sum := sha1.Sum([]byte(password))
	digest := fmt.Sprintf("%X", sum)
	prefix, suffix := digest[:5], digest[5:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/"+prefix, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("range query returned status %d", resp.StatusCode)
	}

	// Response lines are "SUFFIX:COUNT"
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if candidate, _, found := strings.Cut(line, ":"); found && strings.EqualFold(candidate, suffix) {
			return true, nil
		}
	}

	return false, scanner.Err()
}

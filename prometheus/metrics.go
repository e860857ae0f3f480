package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Login counters
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stayadmin_login_total",
			Help: "Total number of admin login attempts",
		},
	)

	// Registration counters
	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stayadmin_register_total",
			Help: "Total number of admin registrations",
		},
	)

	// Account operation counter
	AccountOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayadmin_account_operations_total",
			Help: "Total number of account operations",
		},
		[]string{"operation"}, // operation can be "verify", "reject", "suspend", "unsuspend", "update", "delete", etc.
	)

	// Listing operation counter
	ListingOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayadmin_listing_operations_total",
			Help: "Total number of listing operations",
		},
		[]string{"operation"},
	)

	// Suspension counter by duration token
	SuspensionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayadmin_suspensions_total",
			Help: "Total number of account suspensions by duration",
		},
		[]string{"duration"},
	)

	// Breach check counter by result
	BreachCheckCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayadmin_breach_checks_total",
			Help: "Total number of password breach checks by result",
		},
		[]string{"result"}, // result can be "breached", "clean", "unavailable"
	)

	// Mail counter by kind
	MailCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayadmin_mails_total",
			Help: "Total number of outbound notification mails",
		},
		[]string{"kind"}, // kind can be "rejection", "support_message"
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayadmin_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	ErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stayadmin_errors_total",
			Help: "Total number of dashboard errors",
		},
		[]string{"type"}, // type can be "invalid_request", "not_found", "db_error" etc.
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stayadmin_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stayadmin_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stayadmin_info",
			Help: "Information about the dashboard service",
		},
		[]string{"version"},
	)

	// Suspended accounts
	SuspendedAccountsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stayadmin_suspended_accounts",
			Help: "Number of currently suspended accounts",
		},
	)
)

func init() {
	// Register counters
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(RegisterCounter)
	prometheus.MustRegister(AccountOperationCounter)
	prometheus.MustRegister(ListingOperationCounter)
	prometheus.MustRegister(SuspensionCounter)
	prometheus.MustRegister(BreachCheckCounter)
	prometheus.MustRegister(MailCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(ErrorCounter)

	// Register histograms
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	// Register gauges
	prometheus.MustRegister(InfoGauge)
	prometheus.MustRegister(SuspendedAccountsGauge)

	// Set initial service info
	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Execute the request handler
			err := next(c)

			// Record request duration
			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			// Record metrics
			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// RecordError records a dashboard error by type
func RecordError(errorType string) {
	ErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordAccountOperation records an account operation by type
func RecordAccountOperation(operation string) {
	AccountOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordListingOperation records a listing operation by type
func RecordListingOperation(operation string) {
	ListingOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordSuspension records a suspension by duration token
func RecordSuspension(duration string) {
	SuspensionCounter.With(prometheus.Labels{"duration": duration}).Inc()
}

// RecordBreachCheck records a breach check result
func RecordBreachCheck(result string) {
	BreachCheckCounter.With(prometheus.Labels{"result": result}).Inc()
}

// RecordMail records an outbound mail by kind
func RecordMail(kind string) {
	MailCounter.With(prometheus.Labels{"kind": kind}).Inc()
}

// UpdateSuspendedAccounts updates the suspended accounts gauge
func UpdateSuspendedAccounts(count int) {
	SuspendedAccountsGauge.Set(float64(count))
}

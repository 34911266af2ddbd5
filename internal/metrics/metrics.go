package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobjournal_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	AIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobjournal_ai_requests_total",
		Help: "AI analysis calls by outcome.",
	}, []string{"outcome"})

	MailSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobjournal_mail_sends_total",
		Help: "Outbound notification mails by outcome.",
	}, []string{"outcome"})
)

// GinMiddleware counts every request against its registered route pattern,
// not the raw URL, to keep label cardinality bounded.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// Handler exposes the prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

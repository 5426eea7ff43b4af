package middleware

import (
    "strconv"

    "github.com/gin-gonic/gin"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequests = promauto.NewCounterVec(
    prometheus.CounterOpts{
        Name: "http_requests_total",
        Help: "HTTP requests by method, route, and status.",
    },
    []string{"method", "route", "status"},
)

// Metrics counts every request against its registered route pattern so
// path parameters don't explode label cardinality.
func Metrics() gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Next()

        route := c.FullPath()
        if route == "" {
            route = "unmatched"
        }
        httpRequests.WithLabelValues(
            c.Request.Method,
            route,
            strconv.Itoa(c.Writer.Status()),
        ).Inc()
    }
}

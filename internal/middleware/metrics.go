package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures, labeled by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis command errors.",
	},
	[]string{"command"},
)

// NotificationsCreated counts notifications written as side effects of
// likes and comments, labeled by kind.
var NotificationsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ripple_notifications_created_total",
		Help: "Total number of notifications created.",
	},
	[]string{"kind"},
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}

package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "chirp_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// TweetsCreated counts tweets accepted by the API.
var TweetsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "chirp_tweets_created_total",
	Help: "Total number of tweets created",
})

// UsersRegistered counts successful registrations.
var UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
	Name: "chirp_users_registered_total",
	Help: "Total number of users registered",
})

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The collector registers against the default registry, which rejects
// duplicates, so the instance is created once and shared.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// MetricsMiddleware adapts the Prometheus collector into a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

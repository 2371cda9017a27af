package helpers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var registry = prometheus.NewRegistry()

// HTTPRequests counts handled requests by route and method
var HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "moonfeed_http_requests_total",
	Help: "Number of handled HTTP requests",
}, []string{"route", "method"})

// GraphQLOperations counts executed operation documents by outcome
var GraphQLOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "moonfeed_graphql_operations_total",
	Help: "Number of executed GraphQL operations",
}, []string{"outcome"})

func init() {
	registry.MustRegister(HTTPRequests, GraphQLOperations)
}

// GetRegistry returns the registry served on /metrics
func GetRegistry() *prometheus.Registry {
	return registry
}

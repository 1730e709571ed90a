// SPDX-License-Identifier: MIT

// Package api serves routes over a loaded graph via HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/internal/metrics"
	"github.com/katalvlaran/navgraph/search"
)

// RouterDeps holds everything the router needs. Metrics and Gatherer are
// optional; without a Gatherer there is no /metrics endpoint.
type RouterDeps struct {
	Log              *logrus.Logger
	Graph            *graph.Graph
	Metrics          *metrics.Collectors
	Gatherer         prometheus.Gatherer
	CORSOrigins      []string
	DefaultAlgorithm search.Algorithm
}

func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(requestID())
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: deps.CORSOrigins,
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       1 * time.Hour,
		}))
	}
	if deps.Metrics != nil {
		r.Use(observe(deps.Metrics))
	}
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}

func registerRoutes(api *gin.RouterGroup, h *Handler) {
	api.GET("/health", h.Health)
	api.GET("/graph", h.GraphInfo)
	api.GET("/nodes/:id", h.Node)
	api.GET("/nodes/:id/neighbors", h.Neighbors)
	api.GET("/route/:from/:to", h.Route)
	api.GET("/compare/:from/:to", h.Compare)
}

// NewRouter creates the gin engine with middleware and the /api/v1 routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(r.Group("/api/v1"), NewHandler(deps))

	return r
}

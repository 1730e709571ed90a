// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors for navgraph.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/search"
)

const namespace = "navgraph"

// Collectors groups every navgraph metric. It implements search.Observer and
// is safe for concurrent use.
type Collectors struct {
	searches        *prometheus.CounterVec
	searchDuration  *prometheus.HistogramVec
	nodesExplored   *prometheus.HistogramVec
	graphNodes      prometheus.Gauge
	graphEdges      prometheus.Gauge
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Path searches by algorithm and outcome",
			},
			[]string{"algorithm", "found"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Path search duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
			},
			[]string{"algorithm"},
		),
		nodesExplored: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_nodes_explored",
				Help:      "Nodes explored per path search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"algorithm"},
		),
		graphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the loaded graph",
		}),
		graphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Directed edges in the loaded graph",
		}),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "API error responses by code",
			},
			[]string{"code"},
		),
	}

	for _, col := range []prometheus.Collector{
		c.searches, c.searchDuration, c.nodesExplored,
		c.graphNodes, c.graphEdges,
		c.requestDuration, c.requestsTotal, c.errorsTotal,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveSearch records one finished search.
func (c *Collectors) ObserveSearch(alg search.Algorithm, res search.Result) {
	name := alg.String()
	c.searches.WithLabelValues(name, strconv.FormatBool(res.PathFound)).Inc()
	c.searchDuration.WithLabelValues(name).Observe(res.TimeTaken.Seconds())
	c.nodesExplored.WithLabelValues(name).Observe(float64(res.NodesExplored))
}

// SetGraph publishes the size of g.
func (c *Collectors) SetGraph(g *graph.Graph) {
	c.graphNodes.Set(float64(g.NodeCount()))
	c.graphEdges.Set(float64(g.EdgeCount()))
}

// ObserveRequest records one HTTP request. path should be the route
// pattern, not the raw URL.
func (c *Collectors) ObserveRequest(method, path string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	c.requestDuration.WithLabelValues(method, path, code).Observe(d.Seconds())
	c.requestsTotal.WithLabelValues(method, path, code).Inc()
}

// CountError records an API error response.
func (c *Collectors) CountError(code string) {
	c.errorsTotal.WithLabelValues(code).Inc()
}

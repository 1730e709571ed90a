// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/internal/metrics"
	"github.com/katalvlaran/navgraph/search"
)

// Handler serves the read-only graph and routing endpoints. The graph must
// not be mutated while the Handler is serving.
type Handler struct {
	g          *graph.Graph
	log        *logrus.Logger
	metrics    *metrics.Collectors
	defaultAlg search.Algorithm
	startTime  time.Time
}

// NewHandler creates a Handler from the router dependencies.
func NewHandler(deps *RouterDeps) *Handler {
	return &Handler{
		g:          deps.Graph,
		log:        deps.Log,
		metrics:    deps.Metrics,
		defaultAlg: deps.DefaultAlgorithm,
		startTime:  time.Now(),
	}
}

// searcher returns a fresh Searcher for one request.
func (h *Handler) searcher() *search.Searcher {
	if h.metrics != nil {
		return search.New(h.g, search.WithObserver(h.metrics))
	}

	return search.New(h.g)
}

type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", UptimeSeconds: time.Since(h.startTime).Seconds()})
}

type graphResponse struct {
	Nodes      int                `json:"nodes"`
	Edges      int                `json:"edges"`
	Algorithms []search.Algorithm `json:"algorithms"`
}

// GraphInfo reports the graph size and the available algorithms.
func (h *Handler) GraphInfo(c *gin.Context) {
	c.JSON(http.StatusOK, graphResponse{
		Nodes:      h.g.NodeCount(),
		Edges:      h.g.EdgeCount(),
		Algorithms: search.Algorithms(),
	})
}

type nodeResponse struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Degree int     `json:"degree"`
}

// nodeParam resolves the named path parameter to a node, writing a 400 or
// 404 and returning nil when it cannot.
func (h *Handler) nodeParam(c *gin.Context, name string) *graph.Node {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, fmt.Sprintf("%s must be an integer node id, got %q", name, raw))
		return nil
	}
	n := h.g.Node(id)
	if n == nil {
		h.respondError(c, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("node %d not found", id))
		return nil
	}

	return n
}

func (h *Handler) describe(n *graph.Node) nodeResponse {
	return nodeResponse{
		ID: n.ID(), Name: n.Name(), X: n.X(), Y: n.Y(),
		Degree: h.g.Adjacencies(n.ID()).Len(),
	}
}

// Node returns one node.
func (h *Handler) Node(c *gin.Context) {
	n := h.nodeParam(c, "id")
	if n == nil {
		return
	}
	c.JSON(http.StatusOK, h.describe(n))
}

type neighborResponse struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

type neighborsResponse struct {
	ID        int                `json:"id"`
	Neighbors []neighborResponse `json:"neighbors"`
}

// Neighbors lists the outgoing edges of a node in adjacency order.
func (h *Handler) Neighbors(c *gin.Context) {
	n := h.nodeParam(c, "id")
	if n == nil {
		return
	}
	resp := neighborsResponse{ID: n.ID(), Neighbors: []neighborResponse{}}
	for e := range h.g.Adjacencies(n.ID()).All() {
		var name string
		if d := h.g.Node(e.Destination); d != nil {
			name = d.Name()
		}
		resp.Neighbors = append(resp.Neighbors, neighborResponse{ID: e.Destination, Name: name, Weight: e.Weight})
	}
	c.JSON(http.StatusOK, resp)
}

type routeResponse struct {
	Algorithm     search.Algorithm `json:"algorithm"`
	From          int              `json:"from"`
	To            int              `json:"to"`
	PathFound     bool             `json:"path_found"`
	Path          []int            `json:"path"`
	Names         []string         `json:"names"`
	TotalDistance float64          `json:"total_distance"`
	NodesExplored int              `json:"nodes_explored"`
	TimeMillis    float64          `json:"time_ms"`
}

func (h *Handler) route(alg search.Algorithm, from, to int, res search.Result) routeResponse {
	names := make([]string, 0, len(res.Path))
	for _, id := range res.Path {
		names = append(names, h.g.Node(id).Name())
	}

	return routeResponse{
		Algorithm:     alg,
		From:          from,
		To:            to,
		PathFound:     res.PathFound,
		Path:          res.Path,
		Names:         names,
		TotalDistance: res.TotalDistance,
		NodesExplored: res.NodesExplored,
		TimeMillis:    float64(res.TimeTaken) / float64(time.Millisecond),
	}
}

// endpoints resolves :from and :to.
func (h *Handler) endpoints(c *gin.Context) (from, to *graph.Node, ok bool) {
	if from = h.nodeParam(c, "from"); from == nil {
		return nil, nil, false
	}
	if to = h.nodeParam(c, "to"); to == nil {
		return nil, nil, false
	}

	return from, to, true
}

// Route runs one search; ?algorithm= overrides the default. An unreachable
// goal is a 200 with path_found=false.
func (h *Handler) Route(c *gin.Context) {
	alg := h.defaultAlg
	if name := c.Query("algorithm"); name != "" {
		parsed, err := search.ParseAlgorithm(name)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
			return
		}
		alg = parsed
	}
	from, to, ok := h.endpoints(c)
	if !ok {
		return
	}

	res, err := h.searcher().Run(alg, from.ID(), to.ID())
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	h.log.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"from":      from.ID(),
		"to":        to.ID(),
		"found":     res.PathFound,
		"explored":  res.NodesExplored,
	}).Debug("route")

	c.JSON(http.StatusOK, h.route(alg, from.ID(), to.ID(), res))
}

type compareResponse struct {
	From    int               `json:"from"`
	To      int               `json:"to"`
	Results []routeResponse   `json:"results"`
	Best    *search.Algorithm `json:"best"`
}

// Compare runs every algorithm on the same pair. best is null when no
// algorithm reached the goal.
func (h *Handler) Compare(c *gin.Context) {
	from, to, ok := h.endpoints(c)
	if !ok {
		return
	}

	cmp := h.searcher().Compare(from.ID(), to.ID())
	resp := compareResponse{From: cmp.Start, To: cmp.Goal, Results: make([]routeResponse, 0, len(cmp.Entries))}
	for _, e := range cmp.Entries {
		resp.Results = append(resp.Results, h.route(e.Algorithm, cmp.Start, cmp.Goal, e.Result))
	}
	if best, ok := cmp.Best(); ok {
		resp.Best = &best.Algorithm
	}
	c.JSON(http.StatusOK, resp)
}

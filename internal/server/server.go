package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bountyy/localtap/internal/aggregate"
	"github.com/bountyy/localtap/internal/catalog"
	"github.com/bountyy/localtap/internal/model"
)

// countryHeader is set by the fronting proxy when it knows the
// submitter's country. The service itself never does geo lookups.
const countryHeader = "X-Country"

// Server is the aggregation service's HTTP layer.
//
// Design decision: The server owns no state beyond its dependencies;
// everything mutable lives behind the aggregator. Handlers translate
// HTTP to aggregator calls and back, nothing more, so the HTTP layer
// can be tested with a memory store and swapped without touching
// aggregation semantics.
type Server struct {
	engine *gin.Engine
	agg    *aggregate.Aggregator
	cat    *catalog.Catalog
	logger *slog.Logger
}

// New creates a Server over the given aggregator and catalog.
func New(agg *aggregate.Aggregator, cat *catalog.Catalog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		agg:    agg,
		cat:    cat,
		logger: logger,
	}
	s.registerRoutes()

	return s
}

// Handler returns the server's HTTP handler for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// registerRoutes wires the API surface.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.POST("/report", s.handleReport)
		api.GET("/results", s.handleResults)
		api.GET("/frequency", s.handleFrequency)
		api.GET("/targets", s.handleTargets)

		// Clear accepts GET as well as POST so it can be triggered
		// from a browser address bar during development.
		api.GET("/clear", s.handleClear)
		api.POST("/clear", s.handleClear)
	}

	s.engine.GET("/healthz", s.handleHealth)
}

// reportRequest is the loosely typed submission body. Every field is
// decoded as any and coerced afterwards, so a field of the wrong type
// degrades to its safe default instead of failing the whole request.
// The timestamp is accepted as either an epoch-milliseconds number or
// an RFC 3339 string; browser clients send Date.now() while CLI
// clients send formatted time.
type reportRequest struct {
	Open  any
	Total any
	UA    any
	TS    any
}

// newReportRequest extracts the known fields from a decoded JSON value.
// Non-object bodies yield a request with every field missing.
func newReportRequest(body any) reportRequest {
	obj, _ := body.(map[string]any)
	return reportRequest{
		Open:  obj["open"],
		Total: obj["total"],
		UA:    obj["ua"],
		TS:    obj["ts"],
	}
}

// openPorts coerces the open field, dropping non-numeric entries.
func (r reportRequest) openPorts() []int {
	list, ok := r.Open.([]any)
	if !ok {
		return nil
	}
	ports := make([]int, 0, len(list))
	for _, v := range list {
		if f, ok := v.(float64); ok {
			ports = append(ports, int(f))
		}
	}
	return ports
}

// total coerces the total field, defaulting to zero.
func (r reportRequest) total() int {
	f, ok := r.Total.(float64)
	if !ok {
		return 0
	}
	return int(f)
}

// userAgent coerces the ua field, defaulting to empty.
func (r reportRequest) userAgent() string {
	s, _ := r.UA.(string)
	return s
}

// timestamp converts the submitted value, falling back to now.
func (r reportRequest) timestamp() time.Time {
	switch v := r.TS.(type) {
	case float64:
		if v > 0 {
			return time.UnixMilli(int64(v)).UTC()
		}
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t.UTC()
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

// handleReport accepts one scan report submission.
//
// Malformed field values are repaired, here or downstream by the
// aggregator; only a body that does not parse as JSON at all is
// rejected. Submitter network metadata is derived server-side, never
// trusted from the body.
func (s *Server) handleReport(c *gin.Context) {
	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	req := newReportRequest(body)

	country := c.GetHeader(countryHeader)
	if country == "" {
		country = "unknown"
	}

	report := model.ScanReport{
		Open:       req.openPorts(),
		Total:      req.total(),
		UserAgent:  req.userAgent(),
		Timestamp:  req.timestamp(),
		RemoteAddr: c.ClientIP(),
		Country:    country,
	}

	if err := s.agg.Submit(c.Request.Context(), report); err != nil {
		s.logger.Error("report submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleResults returns the stored report log, oldest first.
func (s *Server) handleResults(c *gin.Context) {
	reports, err := s.agg.Reports(c.Request.Context())
	if err != nil {
		s.logger.Error("report listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(reports),
		"reports": reports,
	})
}

// handleFrequency returns per-port open frequencies over the log.
func (s *Server) handleFrequency(c *gin.Context) {
	freq, err := s.agg.Frequency(c.Request.Context())
	if err != nil {
		s.logger.Error("frequency computation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	c.JSON(http.StatusOK, freq)
}

// handleTargets returns the service catalog, optionally filtered by
// category.
func (s *Server) handleTargets(c *gin.Context) {
	records := s.cat.Records()

	if q := c.Query("category"); q != "" {
		want := catalog.ParseCategory(q)
		filtered := records[:0]
		for _, r := range records {
			if r.Category == want {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"targets": records,
	})
}

// handleClear empties the report log.
func (s *Server) handleClear(c *gin.Context) {
	if err := s.agg.Clear(c.Request.Context()); err != nil {
		s.logger.Error("clear failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "cleared": true})
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok "+strconv.Itoa(s.cat.Len())+" targets")
}

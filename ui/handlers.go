package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gridiron/adapters/plot"
	"gridiron/internal/analysis"
	"gridiron/internal/errors"
)

// handleHealth reports liveness; it never touches the dataset
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleIndex serves the HTML service overview
func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.index)
}

// handleStats returns dataset dimensions and descriptive statistics for the
// key columns
func (s *Server) handleStats(c *gin.Context) {
	tbl, err := s.store.Load()
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis.Summarize(tbl, s.store.Path(), analysis.SummaryColumns()))
}

// handlePlot renders the scatter chart for one tracked column pairing
func (s *Server) handlePlot(c *gin.Context, pairing analysis.Pairing) {
	tbl, err := s.store.Load()
	if err != nil {
		s.renderError(c, err)
		return
	}

	result, err := analysis.AnalyzePair(tbl, analysis.KeyMetricColumn, pairing.XColumn)
	if err != nil {
		s.renderError(c, err)
		return
	}

	img, err := plot.RenderScatter(plot.ScatterRequest{
		XS:          result.XS,
		YS:          result.YS,
		Slope:       result.Slope,
		Intercept:   result.Intercept,
		Correlation: result.Correlation,
		XLabel:      pairing.XColumn,
		YLabel:      analysis.KeyMetricColumn,
		Title:       pairing.Title,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}

// renderError maps application error codes onto HTTP statuses. A missing
// dataset file is a server fault, so NOT_FOUND maps to 500 rather than 404.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeDegenerateInput:
		status = http.StatusUnprocessableEntity
	}

	log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(status, gin.H{"error": err.Error()})
}

package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"gridiron/internal/analysis"
	"gridiron/internal/datastore"
	"gridiron/ui/middleware"
)

// Server represents the web server for the team statistics service
type Server struct {
	router *gin.Engine
	store  *datastore.Store
	index  []byte
}

// NewServer creates the web server around a dataset store
func NewServer(store *datastore.Store) *Server {
	s := &Server{
		router: gin.New(),
		store:  store,
		index:  renderIndexPage(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestLogger(), gin.Recovery())
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/api/stats", s.handleStats)

	for _, pairing := range analysis.Pairings {
		pairing := pairing // per-iteration copy: required under go <1.22 loop semantics
		s.router.GET(plotRoute(pairing), func(c *gin.Context) {
			s.handlePlot(c, pairing)
		})
	}
}

// plotRoute is the API path serving the scatter chart for one pairing
func plotRoute(pairing analysis.Pairing) string {
	return "/api/ppg-vs-" + pairing.Slug
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting gridiron server on http://%s", addr)
	return s.router.Run(addr)
}

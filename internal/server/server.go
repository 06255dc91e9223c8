package server

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/illestjason29/videodownloader/internal/config"
	"github.com/illestjason29/videodownloader/internal/download"
)

// Route paths
const (
	PathIndex    = "/"
	PathStatic   = "/static"
	PathAPI      = "/api"
	PathHealth   = "/health"
	PathMetadata = "/metadata"
	PathDownload = "/download"
	PathAudio    = "/audio"

	IndexFile = "index.html"
)

// Server is the HTTP surface of the downloader.
type Server struct {
	downloader download.Downloader
	settings   *config.Settings
	engine     *gin.Engine
}

// New assembles the gin engine: CORS open to browser clients hosted
// elsewhere, static assets, and the API routes.
func New(downloader download.Downloader, settings *config.Settings) *Server {
	s := &Server{
		downloader: downloader,
		settings:   settings,
	}

	engine := gin.Default()
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	engine.StaticFile(PathIndex, filepath.Join(settings.StaticDir, IndexFile))
	engine.Static(PathStatic, settings.StaticDir)

	api := engine.Group(PathAPI)
	api.GET(PathHealth, s.handleHealth)
	api.POST(PathMetadata, s.handleMetadata)
	api.GET(PathDownload, s.handleDownload)
	api.GET(PathAudio, s.handleAudio)

	s.engine = engine
	return s
}

// Run starts serving on the configured address and blocks.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:        s.settings.Addr,
		Handler:     s.engine,
		ReadTimeout: 30 * time.Second,
		// Downloads stream for as long as the client needs.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("tikloader listening on %s", s.settings.Addr)
	return srv.ListenAndServe()
}

// Handler exposes the assembled engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

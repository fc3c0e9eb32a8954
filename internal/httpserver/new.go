package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"finbook/config"
	"finbook/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	db *sql.DB

	ai              config.AIConfig
	regionCacheSize int
	parsePerMinute  int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	AI              config.AIConfig
	RegionCacheSize int
	ParsePerMinute  int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		ai:              cfg.AI,
		regionCacheSize: cfg.RegionCacheSize,
		parsePerMinute:  cfg.ParsePerMinute,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	return nil
}

// Run maps all handlers and starts listening. It blocks until the server
// stops.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}

// Package server provides a local mock REST API over a json-server
// style database file, for frontends developed against the habit
// tracker's data shapes.
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
)

// Collections are the resource names the mock API serves.
var Collections = []string{"users", "habits", "tasks"}

// Config holds the mock server settings. Environment variables
// (HABITKIT_PORT, HABITKIT_DB, HABITKIT_DELAY_MS) override unset
// values, loaded from a .env file when one is present. A negative
// Delay means unset; zero disables the artificial latency.
type Config struct {
	Port   int
	DBPath string
	Delay  time.Duration
}

// LoadConfig fills unset fields from the environment and then from the
// package defaults.
func LoadConfig(cfg Config) Config {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	if cfg.Port == 0 {
		if v, err := strconv.Atoi(os.Getenv("HABITKIT_PORT")); err == nil && v > 0 {
			cfg.Port = v
		} else {
			cfg.Port = constants.DefaultServePort
		}
	}
	if cfg.DBPath == "" {
		if v := os.Getenv("HABITKIT_DB"); v != "" {
			cfg.DBPath = v
		} else {
			cfg.DBPath = constants.DefaultServeDB
		}
	}
	if cfg.Delay < 0 {
		if v, err := strconv.Atoi(os.Getenv("HABITKIT_DELAY_MS")); err == nil && v >= 0 {
			cfg.Delay = time.Duration(v) * time.Millisecond
		} else {
			cfg.Delay = constants.DefaultServeDelay
		}
	}

	return cfg
}

// Server serves CRUD routes for each collection in the database file.
type Server struct {
	cfg Config
	db  *Database
}

func New(cfg Config) (*Server, error) {
	db, err := OpenDatabase(cfg.DBPath, Collections)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, db: db}, nil
}

// Router builds the gin engine with CORS open to any origin and the
// configured artificial latency, mimicking a remote backend.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	if s.cfg.Delay > 0 {
		router.Use(func(c *gin.Context) {
			time.Sleep(s.cfg.Delay)
			c.Next()
		})
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/:collection", s.handleList)
	router.POST("/:collection", s.handleCreate)
	router.GET("/:collection/:id", s.handleGet)
	router.PUT("/:collection/:id", s.handleReplace)
	router.PATCH("/:collection/:id", s.handlePatch)
	router.DELETE("/:collection/:id", s.handleDelete)

	return router
}

// Run blocks serving HTTP on the configured port.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logger.Info("mock api listening", "addr", addr, "db", s.cfg.DBPath, "delay", s.cfg.Delay)
	return s.Router().Run(addr)
}

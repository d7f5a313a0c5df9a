// Package server exposes the salary, ATS and statistics services over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/ctcgo/internal/ats"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/salary"
	"github.com/rgehrsitz/ctcgo/internal/stats"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Server wires the services to a gin router.
type Server struct {
	Salary  *salary.Service
	Ats     *ats.Service
	Stats   *stats.Service
	Config  config.ServerConfig
	Logger  *zap.Logger
	Version string

	router *gin.Engine
}

// New builds a Server and registers its routes.
func New(cfg config.ServerConfig, sal *salary.Service, checker *ats.Service, st *stats.Service, log *zap.Logger, version string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	// amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	s := &Server{Salary: sal, Ats: checker, Stats: st, Config: cfg, Logger: log, Version: version}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	if s.Config.MaxUploadSize > 0 {
		r.MaxMultipartMemory = s.Config.MaxUploadSize
	}
	r.Use(requestLogger(s.Logger), recovery(s.Logger), userIdentity())

	corsCfg := cors.DefaultConfig()
	if len(s.Config.AllowOrigins) == 0 || (len(s.Config.AllowOrigins) == 1 && s.Config.AllowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.Config.AllowOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", UserHeader}
	r.Use(cors.New(corsCfg))

	r.GET("/", s.info)

	api := r.Group("/api")
	{
		api.GET("/health", s.health)

		sal := api.Group("/salary")
		sal.POST("/calculate", s.calculate)
		sal.GET("/history", s.history)
		sal.GET("/city-tax", s.listCityTax)
		sal.POST("/city-tax", s.createCityTax)
		sal.GET("/city-tax/:city", s.getCityTax)
		sal.PUT("/city-tax/:city", s.updateCityTax)
		sal.DELETE("/city-tax/:city", s.deleteCityTax)

		common := api.Group("/common")
		common.GET("/cities", s.reference(cityKind))
		common.GET("/companies", s.reference(companyKind))
		common.GET("/designations", s.reference(designationKind))

		a := api.Group("/ats")
		a.POST("/check", s.atsCheck)
		a.GET("/history", s.atsHistory)
		a.GET("/history/:id", s.atsGet)
		a.POST("/premium/enhance", s.atsEnhance)
		a.POST("/usage", s.atsUsage)

		api.GET("/admin/statistics", s.statistics)
		api.GET("/admin/calculations", s.allCalculations)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("server starting", zap.String("address", s.Config.Address), zap.String("version", s.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "ctcgo",
		"description": "CTC to in-hand salary calculator for India",
		"version":     s.Version,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
}

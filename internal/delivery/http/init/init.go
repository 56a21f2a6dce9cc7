package http_init

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

const readHeaderTimeout = 5 * time.Second

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// ControllerPool mounts every controller under /api/v1 behind the shared
// middlewares.
type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
}

func NewControllerPool(middlewares ...gin.HandlerFunc) *ControllerPool {
	engine := gin.Default()
	rg := engine.Group(apiPrefix, middlewares...)
	return &ControllerPool{
		pool:   make([]Controller, 0, 4),
		rg:     rg,
		engine: engine,
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

func (pool *ControllerPool) Server(host, port string) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           pool.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func (pool *ControllerPool) RunAll(host, port string) {
	srv := pool.Server(host, port)
	log.Printf("[http] listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

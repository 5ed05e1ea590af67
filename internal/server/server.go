package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopeasy/shopeasy-commerce-service/internal/config"
	"github.com/shopeasy/shopeasy-commerce-service/internal/handlers"
	"github.com/shopeasy/shopeasy-commerce-service/internal/metrics"
)

// Server wraps the gin engine and the underlying http.Server so callers get
// a graceful Shutdown.
type Server struct {
	config  *config.Config
	router  *gin.Engine
	httpSrv *http.Server
}

// New builds the router, registers all routes and returns a ready-to-start
// server.
func New(h *handlers.Handlers, m *metrics.Metrics, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(m.GinMiddleware())

	s := &Server{
		config: cfg,
		router: router,
		httpSrv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	s.setupRoutes(h, m)

	return s
}

func (s *Server) setupRoutes(h *handlers.Handlers, m *metrics.Metrics) {
	s.router.GET("/health", h.Health)
	s.router.GET("/ready", h.Ready)
	s.router.GET("/version", h.Version)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/products", h.ListProducts)
		v1.POST("/products", h.AddProduct)

		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/login", h.Login)

		users := v1.Group("/users/:userID")
		{
			users.GET("/cart", h.GetCart)
			users.DELETE("/cart", h.ClearCart)
			users.POST("/cart/items", h.AddCartItem)
			users.PATCH("/cart/items/:key", h.UpdateCartItem)
			users.DELETE("/cart/items/:key", h.RemoveCartItem)
			users.PUT("/cart/discount", h.SetDiscount)

			users.POST("/checkout", h.Checkout)
			users.GET("/orders", h.OrderHistory)
		}
	}
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

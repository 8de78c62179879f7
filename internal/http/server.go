package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"bakery/internal/backend"
	"bakery/internal/checkout"
	"bakery/internal/service"
)

// Options необязательные зависимости сервера
type Options struct {
	Logger *zap.Logger
	// AdminAccounts пустой — админские маршруты не монтируются
	AdminAccounts gin.Accounts
	SecureCookies bool
}

type Server struct {
	engine  *gin.Engine
	catalog *service.CatalogService
	carts   *service.CartService
	admin   *service.AdminService
	log     *zap.Logger
	opts    Options
}

func NewServer(catalog *service.CatalogService, carts *service.CartService, admin *service.AdminService, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(requestLogger(opts.Logger), gin.Recovery())
	s := &Server{engine: r, catalog: catalog, carts: carts, admin: admin, log: opts.Logger, opts: opts}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/health", s.health)

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/catalog", s.getCatalog)
		v1.GET("/categories/:slug", s.getCategory)
		v1.GET("/products", s.listProducts)
		v1.GET("/products/:id", s.getProduct)

		carts := v1.Group("/cart", sessionMiddleware(s.opts.SecureCookies))
		carts.GET("", s.getCart)
		carts.DELETE("", s.clearCart)
		carts.POST("/items", s.addCartItem)
		carts.PUT("/items/:id", s.updateCartItem)
		carts.DELETE("/items/:id", s.removeCartItem)
		carts.POST("/toggle", s.toggleCart)
		carts.POST("/checkout", s.checkout)

		if s.admin != nil && len(s.opts.AdminAccounts) > 0 {
			admin := v1.Group("/admin", gin.BasicAuth(s.opts.AdminAccounts))

			categories := admin.Group("/categories")
			categories.GET("", s.adminListCategories)
			categories.GET("/:slug", s.adminGetCategory)
			categories.POST("", s.adminCreateCategory)
			categories.PUT("/:slug", s.adminUpdateCategory)
			categories.DELETE("/:slug", s.adminDeleteCategory)

			products := admin.Group("/products")
			products.GET("", s.adminListProducts)
			products.GET("/:slug", s.adminGetProduct)
			products.POST("", s.adminCreateProduct)
			products.PUT("/:slug", s.adminUpdateProduct)
			products.DELETE("/:slug", s.adminDeleteProduct)

			prices := admin.Group("/prices")
			prices.GET("", s.adminListPrices)
			prices.POST("", s.adminCreatePrice)
			prices.PUT("/:id", s.adminUpdatePrice)
			prices.DELETE("/:id", s.adminDeletePrice)
		}
	}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	st := s.catalog.State(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "catalogLoading": st.Loading, "catalogError": st.Err})
}

func (s *Server) fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	if re, ok := backend.IsRequestError(err); ok {
		msg = re.Message
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}

func mapErrorToStatus(err error) int {
	if re, ok := backend.IsRequestError(err); ok {
		if re.Status >= 400 && re.Status < 500 {
			return re.Status
		}
		return http.StatusBadGateway
	}
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

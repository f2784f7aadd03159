package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llOrtegall/backend-app-full-stack/internal/container"
	handlers "github.com/llOrtegall/backend-app-full-stack/internal/interface/http"
	"github.com/llOrtegall/backend-app-full-stack/internal/interface/middleware"
)

// ProductModule wires product HTTP handlers into routes.
// POST /api/products, GET /api/products, GET /api/products/search,
// GET /api/products/:id.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil)
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/products", createLimiter, m.Handler.Create)
	rg.GET("/products", m.Handler.List)
	rg.GET("/products/search", searchLimiter, m.Handler.Search)
	rg.GET("/products/:id", m.Handler.GetByID)
}

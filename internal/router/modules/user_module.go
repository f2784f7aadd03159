package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llOrtegall/backend-app-full-stack/internal/container"
	handlers "github.com/llOrtegall/backend-app-full-stack/internal/interface/http"
	"github.com/llOrtegall/backend-app-full-stack/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes.
// Public: POST /api/users (registration, rate limited per IP).
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	rg.POST("/users", registerLimiter, m.Handler.Register)
}

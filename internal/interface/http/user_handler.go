package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/llOrtegall/backend-app-full-stack/internal/application"
	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
	"github.com/llOrtegall/backend-app-full-stack/pkg/response"
	"github.com/llOrtegall/backend-app-full-stack/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// Register creates a new user account.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch entity.KindOf(err) {
		case entity.KindUserAlreadyExists:
			response.Error[any](c, http.StatusConflict, err.Error(), nil)
		case entity.KindInvalidUserData:
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("register user failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "failed to register user", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, userPayload(u), "user registered", nil)
}

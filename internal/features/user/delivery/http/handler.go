package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptopay-admin-backend/internal/features/user/models"
	"cryptopay-admin-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.login)
}

type loginRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Wallet     string `json:"wallet"`
	WalletType string `json:"walletType"`
}

// @Summary Login or register
// @Description Returns the user matching (email, wallet), registering a new unapproved user when none exists.
// @Tags users
// @Accept json
// @Produce json
// @Param request body loginRequest true "Identity attributes"
// @Success 200 {object} models.LoginResponse "uid and current approval state"
// @Failure 400 {object} middleware.ErrorResponse "Missing email or wallet"
// @Router /login [post]
func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, _, err := h.service.FindOrCreate(c.Request.Context(), req.Name, req.Email, req.Wallet, req.WalletType)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{UID: user.UID, Approved: user.Approved})
}

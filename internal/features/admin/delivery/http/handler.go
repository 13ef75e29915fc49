package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptopay-admin-backend/internal/common/middleware"
	"cryptopay-admin-backend/internal/features/admin/auth"
	"cryptopay-admin-backend/internal/features/admin/service"
	payoutmodels "cryptopay-admin-backend/internal/features/payout/models"
)

type AdminHandler struct {
	service  service.AdminService
	sessions *auth.SessionStore
}

func NewAdminHandler(service service.AdminService, sessions *auth.SessionStore) *AdminHandler {
	return &AdminHandler{service: service, sessions: sessions}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.POST("/login", h.login)

	protected := admin.Group("")
	protected.Use(middleware.RequireAdmin(h.sessions))
	{
		protected.GET("/payments", h.listPayments)
		protected.POST("/decision", h.decide)
	}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary Admin login
// @Description Verifies the admin credential pair and issues a session token.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body adminLoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "success and session token"
// @Failure 401 {object} map[string]bool "success=false"
// @Router /admin/login [post]
func (h *AdminHandler) login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// @Summary List payments
// @Description Returns the full payment ledger for review.
// @Tags admin
// @Produce json
// @Security AdminSession
// @Success 200 {array} models.Payment
// @Failure 401 {object} map[string]string "Missing or expired session"
// @Router /admin/payments [get]
func (h *AdminHandler) listPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, payments)
}

type decisionRequest struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	WalletAddress string `json:"walletAddress"`
	Balance       string `json:"balance"`
	StandardFee   string `json:"standardFee"`
	PriorityFee   string `json:"priorityFee"`
}

// @Summary Apply decision
// @Description Updates a payment's status, cascades the user's approval flag, and applies any payout config changes. All fields are optional.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param request body decisionRequest true "Decision and config patch"
// @Success 200 {object} map[string]bool "success"
// @Failure 401 {object} map[string]string "Missing or expired session"
// @Router /admin/decision [post]
func (h *AdminHandler) decide(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	decision := service.Decision{
		PaymentID: req.ID,
		Status:    req.Status,
		Config: payoutmodels.ConfigPatch{
			WalletAddress: req.WalletAddress,
			Balance:       req.Balance,
			StandardFee:   req.StandardFee,
			PriorityFee:   req.PriorityFee,
		},
	}

	if err := h.service.Decide(c.Request.Context(), decision); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

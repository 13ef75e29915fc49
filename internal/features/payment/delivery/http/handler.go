package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cryptopay-admin-backend/internal/features/payment/models"
	"cryptopay-admin-backend/internal/features/payment/service"
)

type PaymentHandler struct {
	service    service.PaymentService
	uploadsDir string
}

func NewPaymentHandler(service service.PaymentService, uploadsDir string) *PaymentHandler {
	return &PaymentHandler{service: service, uploadsDir: uploadsDir}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/pay", h.submit)
	router.GET("/status/:uid", h.status)
}

// @Summary Submit payment proof
// @Description Stores the uploaded proof artifact and appends a pending payment for the user.
// @Tags payments
// @Accept multipart/form-data
// @Produce json
// @Param uid formData string true "User uid"
// @Param type formData string true "Payment tier"
// @Param proof formData file true "Proof-of-payment artifact"
// @Success 200 {object} map[string]bool "success"
// @Failure 400 {object} middleware.ErrorResponse "Missing uid, type or proof"
// @Router /pay [post]
func (h *PaymentHandler) submit(c *gin.Context) {
	uid := c.PostForm("uid")
	paymentType := c.PostForm("type")

	file, err := c.FormFile("proof")
	if err != nil || uid == "" || paymentType == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// The stored name is generated; the original filename is untrusted and
	// only its extension is kept.
	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, storedName)); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	// The payment id mirrors the submitting user's uid, as the frontend
	// expects when it later polls by uid.
	if _, err := h.service.Submit(c.Request.Context(), uid, uid, paymentType, storedName); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Check approval status
// @Description Reports whether any payment of the user has been approved.
// @Tags payments
// @Produce json
// @Param uid path string true "User uid"
// @Success 200 {object} models.StatusResponse
// @Router /status/{uid} [get]
func (h *PaymentHandler) status(c *gin.Context) {
	approved, err := h.service.IsApprovedFor(c.Request.Context(), c.Param("uid"))
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Approved: approved})
}

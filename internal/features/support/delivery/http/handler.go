package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cryptopay-admin-backend/internal/features/support/service"
)

type SupportHandler struct {
	service service.SupportService
}

func NewSupportHandler(service service.SupportService) *SupportHandler {
	return &SupportHandler{service: service}
}

func (h *SupportHandler) RegisterRoutes(router *gin.RouterGroup) {
	support := router.Group("/support")
	{
		support.GET("", h.list)
		support.POST("", h.add)
		support.DELETE("/:id", h.remove)
	}
}

// @Summary List support messages
// @Description Returns all support messages in ascending creation order.
// @Tags support
// @Produce json
// @Success 200 {array} models.Message
// @Router /support [get]
func (h *SupportHandler) list(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, messages)
}

type addMessageRequest struct {
	Text string `json:"text"`
}

// @Summary Add support message
// @Tags support
// @Accept json
// @Produce json
// @Param request body addMessageRequest true "Message body"
// @Success 200 {object} map[string]bool "ok"
// @Failure 400 {object} middleware.ErrorResponse "Empty text"
// @Router /support [post]
func (h *SupportHandler) add(c *gin.Context) {
	var req addMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Text required"})
		return
	}

	if _, err := h.service.Append(c.Request.Context(), req.Text); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Delete support message
// @Tags support
// @Produce json
// @Param id path int true "Message id"
// @Success 200 {object} map[string]bool "ok"
// @Router /support/{id} [delete]
func (h *SupportHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

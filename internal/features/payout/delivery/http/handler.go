package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptopay-admin-backend/internal/features/payout/service"
)

type ConfigHandler struct {
	service service.ConfigService
}

func NewConfigHandler(service service.ConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

func (h *ConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/config", h.get)
}

// @Summary Get payout config
// @Description Returns the current payout parameters shown on the payment page.
// @Tags config
// @Produce json
// @Success 200 {object} models.Config
// @Router /config [get]
func (h *ConfigHandler) get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, cfg)
}

package handler

import (
	"net/http"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/apierror"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/repository"

	"github.com/gin-gonic/gin"
)

// SettingsHandler manages the webhook configuration: proxy URL, direct sheet
// URL and proxy API key. Changes take effect on the next submission — the
// router reads settings fresh every call.
type SettingsHandler struct{ store repository.SettingsStore }

func NewSettingsHandler(store repository.SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, dto.SettingsResponse{
		ProxyURL:         h.store.Get(ctx, repository.SettingProxyURL),
		SheetURL:         h.store.Get(ctx, repository.SettingSheetURL),
		APIKeyConfigured: h.store.Get(ctx, repository.SettingProxyAPIKey) != "",
	})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()
	updates := map[string]*string{
		repository.SettingProxyURL:    req.ProxyURL,
		repository.SettingSheetURL:    req.SheetURL,
		repository.SettingProxyAPIKey: req.ProxyAPIKey,
	}
	for key, val := range updates {
		if val == nil {
			continue
		}
		if err := h.store.Set(ctx, key, *val); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("could not store setting"))
			return
		}
	}
	h.Get(c)
}

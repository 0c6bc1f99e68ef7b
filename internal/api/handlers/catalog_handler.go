package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	log     *slog.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

// Store handles GET /stores/{storeID}?category=
func (h *CatalogHandler) Store(w http.ResponseWriter, r *http.Request) {
	storeID, ok := idParam(w, r, "storeID")
	if !ok {
		return
	}
	v, err := h.catalog.StoreView(r.Context(), middleware.DeviceID(r.Context()), storeID, r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Menu handles GET /menus/{menuID}
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := idParam(w, r, "menuID")
	if !ok {
		return
	}
	v, err := h.catalog.MenuView(r.Context(), middleware.DeviceID(r.Context()), menuID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

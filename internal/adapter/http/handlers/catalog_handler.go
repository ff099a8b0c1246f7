package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/dto/response"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/catalog"
)

// CatalogHandler serves read-only material catalog lookups.

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Lookup filters catalog entries by category and keyword query params.
func (h *CatalogHandler) Lookup(c *gin.Context) {
	entries := h.catalog.Lookup(c.Query("category"), c.Query("q"))
	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}

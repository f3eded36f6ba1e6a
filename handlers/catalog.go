package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/catalog"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
	"github.com/molatlhegiM/2Gether-Travels-sub000/services/catalog"
	"github.com/molatlhegiM/2Gether-Travels-sub000/utils"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) ListPackagesHandler(c *gin.Context) {
	packages, err := h.Service.ListPackages(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.Service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "package not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package", err.Error())
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *CatalogHandler) ListHotelsHandler(c *gin.Context) {
	hotels, err := h.Service.ListHotels(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list hotels", err.Error())
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *CatalogHandler) GetHotelHandler(c *gin.Context) {
	hotel, err := h.Service.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch hotel", err.Error())
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *CatalogHandler) ListTransfersHandler(c *gin.Context) {
	transfers, err := h.Service.ListTransfers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list transfers", err.Error())
		return
	}
	c.JSON(http.StatusOK, transfers)
}

func (h *CatalogHandler) GetTransferHandler(c *gin.Context) {
	transfer, err := h.Service.GetTransfer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "transfer not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch transfer", err.Error())
		return
	}
	c.JSON(http.StatusOK, transfer)
}

func (h *CatalogHandler) ListToursHandler(c *gin.Context) {
	tours, err := h.Service.ListTours(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list tours", err.Error())
		return
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	c.JSON(http.StatusOK, tours)
}

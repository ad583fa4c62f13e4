package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/repository"
)

type ServiceController struct {
	Store repository.Store
}

type createServiceRequest struct {
	Category        string             `json:"category" binding:"required"`
	Icon            models.ServiceIcon `json:"icon" binding:"required"`
	Description     string             `json:"description" binding:"required"`
	Features        []string           `json:"features" binding:"required"`
	DetailedContent *string            `json:"detailedContent"`
}

type updateServiceRequest struct {
	Category        *string             `json:"category"`
	Icon            *models.ServiceIcon `json:"icon"`
	Description     *string             `json:"description"`
	Features        []string            `json:"features"`
	DetailedContent *string             `json:"detailedContent"`
}

func (sc *ServiceController) ListServices(c *gin.Context) {
	services, err := sc.Store.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, err := sc.Store.GetService(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Icon.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid icon"})
		return
	}
	svc := models.Service{
		ID:              uuid.NewString(),
		Category:        req.Category,
		Icon:            req.Icon,
		Description:     req.Description,
		Features:        pq.StringArray(req.Features),
		DetailedContent: req.DetailedContent,
	}
	if err := sc.Store.CreateService(c.Request.Context(), &svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category == nil && req.Icon == nil && req.Description == nil && req.Features == nil && req.DetailedContent == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}
	if req.Icon != nil && !req.Icon.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid icon"})
		return
	}

	svc, err := sc.Store.GetService(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Service not found")
		return
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Features != nil {
		svc.Features = pq.StringArray(req.Features)
	}
	if req.DetailedContent != nil {
		svc.DetailedContent = req.DetailedContent
	}
	if err := sc.Store.SaveService(c.Request.Context(), svc); err != nil {
		storeError(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := sc.Store.DeleteService(c.Request.Context(), id); err != nil {
		storeError(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

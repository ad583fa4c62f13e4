package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/repository"
)

type ProjectController struct {
	Store repository.Store
}

type createProjectRequest struct {
	Title           string         `json:"title" binding:"required"`
	Category        string         `json:"category" binding:"required"`
	Description     string         `json:"description" binding:"required"`
	Year            FlexibleString `json:"year" binding:"required"`
	Image           string         `json:"image" binding:"required"`
	DetailedContent *string        `json:"detailedContent"`
	Technologies    []string       `json:"technologies"`
}

type updateProjectRequest struct {
	Title           *string         `json:"title"`
	Category        *string         `json:"category"`
	Description     *string         `json:"description"`
	Year            *FlexibleString `json:"year"`
	Image           *string         `json:"image"`
	DetailedContent *string         `json:"detailedContent"`
	Technologies    []string        `json:"technologies"`
}

func (pc *ProjectController) ListProjects(c *gin.Context) {
	projects, err := pc.Store.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (pc *ProjectController) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := pc.Store.GetProject(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := models.Project{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Category:        req.Category,
		Description:     req.Description,
		Year:            req.Year.String(),
		Image:           req.Image,
		DetailedContent: req.DetailedContent,
	}
	if req.Technologies != nil {
		p.Technologies = pq.StringArray(req.Technologies)
	}
	if err := pc.Store.CreateProject(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (pc *ProjectController) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == nil && req.Category == nil && req.Description == nil && req.Year == nil &&
		req.Image == nil && req.DetailedContent == nil && req.Technologies == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	p, err := pc.Store.GetProject(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Project not found")
		return
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Year != nil {
		p.Year = req.Year.String()
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.DetailedContent != nil {
		p.DetailedContent = req.DetailedContent
	}
	if req.Technologies != nil {
		p.Technologies = pq.StringArray(req.Technologies)
	}
	if err := pc.Store.SaveProject(c.Request.Context(), p); err != nil {
		storeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := pc.Store.DeleteProject(c.Request.Context(), id); err != nil {
		storeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

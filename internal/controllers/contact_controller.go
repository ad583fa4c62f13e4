package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/repository"
)

type ContactController struct {
	Store repository.Store
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (cc *ContactController) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := cc.Store.CreateMessage(c.Request.Context(), &msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (cc *ContactController) ListMessages(c *gin.Context) {
	messages, err := cc.Store.ListMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (cc *ContactController) DeleteMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := cc.Store.DeleteMessage(c.Request.Context(), id); err != nil {
		storeError(c, err, "Message not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact message deleted successfully"})
}

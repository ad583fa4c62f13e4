package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/repository"
)

type CompanyController struct {
	Store repository.Store
}

type updateCompanyRequest struct {
	Name        *string             `json:"name"`
	Tagline     *string             `json:"tagline"`
	Subline     *string             `json:"subline"`
	Description *string             `json:"description"`
	Mission     *string             `json:"mission"`
	Phone       *string             `json:"phone"`
	Email       *string             `json:"email" binding:"omitempty,email"`
	Address     *string             `json:"address"`
	Coordinates *models.Coordinates `json:"coordinates"`
	MapLink     *string             `json:"mapLink"`
	Logo        *string             `json:"logo"`
}

func (cc *CompanyController) Get(c *gin.Context) {
	company, err := cc.Store.GetCompany(c.Request.Context())
	if err != nil {
		storeError(c, err, "Company info not found")
		return
	}
	c.JSON(http.StatusOK, company)
}

func (cc *CompanyController) Update(c *gin.Context) {
	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := cc.Store.GetCompany(c.Request.Context())
	if err != nil {
		storeError(c, err, "Company info not found")
		return
	}

	changed := false
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
			changed = true
		}
	}
	set(&company.Name, req.Name)
	set(&company.Tagline, req.Tagline)
	set(&company.Subline, req.Subline)
	set(&company.Description, req.Description)
	set(&company.Mission, req.Mission)
	set(&company.Phone, req.Phone)
	set(&company.Email, req.Email)
	set(&company.Address, req.Address)
	set(&company.MapLink, req.MapLink)
	set(&company.Logo, req.Logo)
	if req.Coordinates != nil {
		company.Coordinates = *req.Coordinates
		changed = true
	}
	if !changed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	if err := cc.Store.SaveCompany(c.Request.Context(), company); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

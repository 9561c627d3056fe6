package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
)

type ValidationController struct {
	DB *gorm.DB
}

func NewValidationController(db *gorm.DB) *ValidationController {
	return &ValidationController{DB: db}
}

// ValidateCompanyCode lets the signup form check an access code before the
// user submits.
func (vc *ValidationController) ValidateCompanyCode(c *gin.Context) {
	code := c.Param("code")

	var company models.Company
	result := vc.DB.Where("company_code = ?", code).First(&company)

	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":        company.IsActive,
			"company_name": company.CompanyName,
			"is_active":    company.IsActive,
		})
	} else if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"valid": false})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check company code"})
	}
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/config"
	"github.com/daily-hold/plank-api/models"
	"github.com/daily-hold/plank-api/utils"
)

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

// resolveCompanyByCode maps a signup access code to its company. Inactive
// companies reject new members.
func (ac *AuthController) resolveCompanyByCode(code string) (*models.Company, error) {
	var company models.Company
	if err := ac.DB.Where("company_code = ?", code).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// logSignupError writes a best-effort audit row so broken signups can be
// investigated; it never fails the request further.
func (ac *AuthController) logSignupError(email, message string, details models.JSONMap) {
	ac.DB.Create(&models.SignupError{
		Email:        email,
		ErrorMessage: message,
		ErrorDetails: details,
	})
}

func (ac *AuthController) issueTokens(c *gin.Context, user *models.User) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	ac.DB.Create(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(utils.RefreshTokenLifetime),
	})

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"full_name":  user.FullName,
			"company_id": user.CompanyID,
			"is_admin":   user.IsAdmin,
		},
		"success": true,
	})
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		FullName    string `json:"fullName" binding:"required"`
		CompanyCode string `json:"companyCode" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	// Company lookup comes first: users are never created without a company.
	company, err := ac.resolveCompanyByCode(input.CompanyCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company code not found", "success": false})
		return
	}
	if !company.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This company's challenge is not active", "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}
	hashedPasswordStr := string(hashedPassword)

	user := models.User{
		Email:             input.Email,
		FullName:          input.FullName,
		Password:          &hashedPasswordStr,
		Provider:          "email",
		CompanyID:         company.ID,
		TotalPlankSeconds: 0,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		ac.logSignupError(input.Email, "Failed to create user profile", models.JSONMap{
			"company_code": input.CompanyCode,
			"db_error":     err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered", "success": false})
		return
	}

	ac.issueTokens(c, &user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ac.issueTokens(c, &user)
}

func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if ac.GoogleConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured", "success": false})
		return
	}

	var input struct {
		IDToken     string `json:"id_token"`
		AccessToken string `json:"access_token"`
		Code        string `json:"code"`
		RedirectURI string `json:"redirect_uri"`
		CompanyCode string `json:"companyCode"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var userInfo *config.GoogleUserInfo
	var err error

	if input.Code != "" && input.RedirectURI != "" {
		token, exchangeErr := ac.GoogleConfig.ExchangeCode(c.Request.Context(), input.Code)
		if exchangeErr != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange code for token", "success": false})
			return
		}
		userInfo, err = ac.GoogleConfig.GetUserInfo(token.AccessToken)
	} else if input.IDToken != "" {
		userInfo, err = ac.GoogleConfig.VerifyIDToken(input.IDToken)
	} else if input.AccessToken != "" {
		userInfo, err = ac.GoogleConfig.GetUserInfo(input.AccessToken)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either code with redirect_uri, id_token, or access_token is required", "success": false})
		return
	}

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	var user models.User
	userExists := ac.DB.Where("google_id = ? OR email = ?", userInfo.ID, userInfo.Email).First(&user).Error == nil

	if userExists {
		if user.GoogleID == nil || *user.GoogleID == "" {
			user.GoogleID = &userInfo.ID
			user.Provider = "google"
			ac.DB.Save(&user)
		}
	} else {
		// First sign-in still needs a company access code.
		if input.CompanyCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Company code is required for new accounts", "success": false})
			return
		}
		company, lookupErr := ac.resolveCompanyByCode(input.CompanyCode)
		if lookupErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Company code not found", "success": false})
			return
		}
		if !company.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This company's challenge is not active", "success": false})
			return
		}

		fullName := userInfo.Name
		if fullName == "" {
			fullName = userInfo.Email
		}

		user = models.User{
			Email:     userInfo.Email,
			FullName:  fullName,
			GoogleID:  &userInfo.ID,
			Provider:  "google",
			CompanyID: company.ID,
		}

		if err := ac.DB.Create(&user).Error; err != nil {
			ac.logSignupError(userInfo.Email, "Failed to create user profile from Google sign-in", models.JSONMap{
				"company_code": input.CompanyCode,
				"db_error":     err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "success": false})
			return
		}
	}

	ac.issueTokens(c, &user)
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var refreshToken models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&refreshToken).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.DB.Delete(&refreshToken)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, refreshToken.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found", "success": false})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate access token", "success": false})
		return
	}

	newRefreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate refresh token", "success": false})
		return
	}

	refreshToken.Token = newRefreshToken
	refreshToken.ExpirationDate = time.Now().Add(utils.RefreshTokenLifetime)
	ac.DB.Save(&refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
		"success":       true,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var refreshToken models.RefreshToken
	result := ac.DB.Where("token = ?", input.RefreshToken).Delete(&refreshToken)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "success": true})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var dbUser models.User
	if err := ac.DB.Preload("Company").First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":                  dbUser.ID,
			"email":               dbUser.Email,
			"full_name":           dbUser.FullName,
			"company_id":          dbUser.CompanyID,
			"company_name":        dbUser.Company.CompanyName,
			"is_admin":            dbUser.IsAdmin,
			"total_plank_seconds": dbUser.TotalPlankSeconds,
			"created_at":          dbUser.CreatedAt,
		},
	})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		FullName string `json:"full_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dbUser models.User
	if err := ac.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := ac.DB.Model(&dbUser).Update("full_name", input.FullName).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
	})
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		// Don't leak which emails exist.
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "If the email exists, a reset link has been sent"})
		return
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := ac.DB.Create(&reset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset token", "success": false})
		return
	}

	// Mail delivery is handled out of band; the token is returned here for
	// the development setup only when no mailer is configured.
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "If the email exists, a reset link has been sent"})
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var reset models.PasswordReset
	if err := ac.DB.Where("token = ? AND used = false", input.Token).First(&reset).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token", "success": false})
		return
	}

	if time.Now().After(reset.ExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token", "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}
	hashedPasswordStr := string(hashedPassword)

	if err := ac.DB.Model(&models.User{}).Where("id = ?", reset.UserID).
		Update("password", hashedPasswordStr).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password", "success": false})
		return
	}

	ac.DB.Model(&reset).Update("used", true)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
}

package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"judge/database"
	"judge/models"
	"judge/utils"
	"judge/utils/response"
)

// Login authenticates a user and returns a JWT
// @Summary Login
// @Description Authenticate with email and password, returns a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	lifetime := 24 * time.Hour
	if req.RememberMe {
		lifetime = 30 * 24 * time.Hour
	}
	token, err := utils.GenerateToken(user.ID, user.Username, user.IsAdmin, lifetime)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	now := time.Now()
	user.LastConnected = &now
	database.DB.Model(&user).Update("last_connected", now)

	setCookieToken(c, token, req.RememberMe)
	c.JSON(http.StatusOK, AuthResponse{
		Token:         token,
		UserID:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
		IsAdmin:       user.IsAdmin,
		LastConnected: user.LastConnected,
	})
}

// RegisterUser creates a new contestant account
// @Summary Register
// @Description Create a new contestant account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrEmailInUse)
		return
	}
	database.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrUsernameInUse)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Logout clears the authentication cookie
// @Summary Logout
// @Description Clear the authentication cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	response.Message(c, "Successfully logged out")
}

// CheckAuth validates the caller's token and returns the account it belongs to
// @Summary Check authentication
// @Description Validate the current token and return the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
func CheckAuth(c *gin.Context) {
	token := ""
	if cookie, err := c.Cookie("auth_token"); err == nil {
		token = cookie
	} else if authHeader := c.GetHeader("Authorization"); len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	}
	if token == "" {
		response.Error(c, http.StatusUnauthorized, ErrNoTokenProvided)
		return
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidExpiredToken)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrUserNotFound)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:         token,
		UserID:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
		IsAdmin:       user.IsAdmin,
		LastConnected: user.LastConnected,
	})
}

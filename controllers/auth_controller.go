package controllers

import (
	"net/http"
	"strings"

	"knightspantry/metrics"
	"knightspantry/repositories"
	"knightspantry/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	var input struct {
		Email     string `json:"email" binding:"required"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		UcfID     string `json:"ucfId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	user, token, err := ctrl.service.Signup(services.SignupInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		UcfID:     input.UcfID,
	})
	if err == repositories.ErrEmailRegistered {
		metrics.AuthSignup.WithLabelValues("conflict").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		metrics.AuthSignup.WithLabelValues("err").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	metrics.AuthSignup.WithLabelValues("ok").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created",
		"token":   token,
		"user":    user.Public(),
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	user, token, err := ctrl.service.Login(input.Email, input.Password)
	if err == services.ErrInvalidCredentials {
		metrics.AuthLogin.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		metrics.AuthLogin.WithLabelValues("err").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	metrics.AuthLogin.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token required"})
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	if err := ctrl.service.Logout(tokenString); err != nil {
		if err == services.ErrInvalidToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to blacklist token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

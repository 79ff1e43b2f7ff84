package handler

import (
	"net/http"

	"cms-backend/internal/dto"
	"cms-backend/internal/service"
	"cms-backend/pkg/apperror"
	"cms-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidParams, "Invalid params"))
		return
	}

	result, err := h.service.LoginOrRegister(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"profile": result.Profile,
	})
}

func (h *AuthHandler) GetToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidParams, "Invalid params"))
		return
	}

	token, err := h.service.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

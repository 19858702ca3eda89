package handler

import (
	"errors"

	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/api/middleware"
	"vidnest-go/internal/api/response"
	"vidnest-go/internal/service"
	"vidnest-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Register failed", zap.String("username", req.Username), zap.Error(err))
		response.InternalError(c, "注册失败，请稍后重试")
		return
	}

	response.Created(c, "注册成功", info)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredential):
			response.Unauthorized(c, err.Error())
		case errors.Is(err, service.ErrUserDeleted):
			response.Forbidden(c, err.Error())
		default:
			logger.Error("Login failed", zap.String("username", req.Username), zap.Error(err))
			response.InternalError(c, "登录失败，请稍后重试")
		}
		return
	}

	response.OK(c, "登录成功", data)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	info, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrUserDeleted):
			response.Forbidden(c, err.Error())
		default:
			logger.Error("Get current user failed", zap.Int64("user_id", userID), zap.Error(err))
			response.InternalError(c, "获取用户信息失败")
		}
		return
	}

	response.OK(c, "获取用户信息成功", info)
}

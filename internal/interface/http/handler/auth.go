package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/gamesup/internal/application/user"
	"github.com/xiebiao/gamesup/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/gamesup/internal/interface/http/dto"
	"github.com/xiebiao/gamesup/internal/interface/http/middleware"
	"github.com/xiebiao/gamesup/pkg/jwt"
	"github.com/xiebiao/gamesup/pkg/response"
)

// AuthHandler 认证HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. validate是公开接口：任何持有token的调用方都可以查询其存活状态
type AuthHandler struct {
	loginUseCase  *appuser.LoginUseCase
	logoutUseCase *appuser.LogoutUseCase
	manageUseCase *appuser.ManageUsersUseCase
	jwtManager    *jwt.Manager
	sessionStore  *redis.SessionStore
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	manageUseCase *appuser.ManageUsersUseCase,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUseCase,
		logoutUseCase: logoutUseCase,
		manageUseCase: manageUseCase,
		jwtManager:    jwtManager,
		sessionStore:  sessionStore,
	}
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码，返回JWT Token对
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} appuser.LoginResponse "登录成功"
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      401 {object} response.ErrorResponse "邮箱或密码错误"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Logout 用户登出
// @Summary      用户登出
// @Description  删除会话并将当前Token加入黑名单
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      204 "登出成功"
// @Failure      401 {object} response.ErrorResponse "未登录"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	token := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Me 当前登录账号信息
// @Summary      当前账号
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} appuser.UserDetail
// @Failure      401 {object} response.ErrorResponse "未登录"
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	detail, err := h.manageUseCase.Get(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// Validate 检查Token存活状态
// @Summary      检查Token
// @Description  返回Token是否仍然有效（已登出/过期/伪造都返回false）
// @Tags         认证
// @Produce      json
// @Success      200 {object} map[string]bool "校验结果"
// @Router       /api/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	// 宽松解析：接受"Bearer <token>"，也接受裸token
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		response.Success(c, gin.H{"valid": false})
		return
	}

	// 黑名单优先：已登出的Token即使签名有效也视为失效
	blacklisted, err := h.sessionStore.IsInBlacklist(c.Request.Context(), token)
	if err != nil || blacklisted {
		response.Success(c, gin.H{"valid": false})
		return
	}

	if _, err := h.jwtManager.ParseToken(token); err != nil {
		response.Success(c, gin.H{"valid": false})
		return
	}

	response.Success(c, gin.H{"valid": true})
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/gamesup/internal/application/user"
	"github.com/xiebiao/gamesup/internal/domain/user"
	"github.com/xiebiao/gamesup/internal/interface/http/dto"
	"github.com/xiebiao/gamesup/pkg/response"
)

// UserHandler 用户HTTP处理器
// 路由划分：register/clients/admins公开，其余账号管理接口只对管理员开放
// （授权在路由组的中间件上集中判定，Handler内不再重复判角色）
type UserHandler struct {
	registerUseCase *appuser.RegisterUseCase
	manageUseCase   *appuser.ManageUsersUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	manageUseCase *appuser.ManageUsersUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUseCase,
		manageUseCase:   manageUseCase,
	}
}

// parseIDParam 解析路径里的数字ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, 40900, "非法的ID参数")
		return 0, false
	}
	return uint(id), true
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新客户账号（角色固定为CLIENT）
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} appuser.RegisterResponse "注册成功"
// @Failure      400 {object} response.ErrorResponse "参数错误或邮箱已存在"
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Create 创建账号并指定角色（管理端）
// @Summary      创建账号
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AdminRegisterRequest true "账号信息"
// @Success      201 {object} appuser.RegisterResponse
// @Failure      403 {object} response.ErrorResponse "非管理员"
// @Router       /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.registerUseCase.ExecuteWithRole(c.Request.Context(), appuser.RegisterRequest{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Password:  req.Password,
	}, user.Role(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// List 查询全部用户（管理端）
// @Summary      用户列表
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} appuser.UserInfo
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	list, err := h.manageUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListClients 客户列表
// @Summary      客户列表
// @Tags         用户
// @Produce      json
// @Success      200 {array} appuser.UserInfo
// @Router       /api/users/clients [get]
func (h *UserHandler) ListClients(c *gin.Context) {
	list, err := h.manageUseCase.ListByRole(c.Request.Context(), user.RoleClient)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListAdmins 管理员列表
// @Summary      管理员列表
// @Tags         用户
// @Produce      json
// @Success      200 {array} appuser.UserInfo
// @Router       /api/users/admins [get]
func (h *UserHandler) ListAdmins(c *gin.Context) {
	list, err := h.manageUseCase.ListByRole(c.Request.Context(), user.RoleAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListByRole 按角色查询用户（管理端）
// @Summary      按角色查询用户
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        role path string true "角色" Enums(CLIENT, ADMIN)
// @Success      200 {array} appuser.UserInfo
// @Failure      400 {object} response.ErrorResponse "非法角色"
// @Router       /api/users/role/{role} [get]
func (h *UserHandler) ListByRole(c *gin.Context) {
	list, err := h.manageUseCase.ListByRole(c.Request.Context(), user.Role(c.Param("role")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Search 搜索用户（管理端）
// @Summary      搜索用户
// @Description  关键词匹配姓、名或邮箱，大小写不敏感
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        keyword query string false "关键词"
// @Success      200 {array} appuser.UserInfo
// @Router       /api/users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	list, err := h.manageUseCase.Search(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 用户详情（管理端，含消费统计）
// @Summary      用户详情
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Success      200 {object} appuser.UserDetail
// @Failure      404 {object} response.ErrorResponse "用户不存在"
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.manageUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// Update 更新用户信息（管理端）
// @Summary      更新用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Param        request body dto.UpdateProfileRequest true "用户信息"
// @Success      200 {object} appuser.UserInfo
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.manageUseCase.UpdateProfile(c.Request.Context(), id, req.LastName, req.FirstName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// SetActive 启用/停用账号（管理端）
// @Summary      启用/停用账号
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Param        request body dto.SetActiveRequest true "启用状态"
// @Success      204 "操作成功"
// @Router       /api/users/{id}/active [patch]
func (h *UserHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.manageUseCase.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ChangeRole 变更用户角色（管理端）
// @Summary      变更角色
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Param        request body dto.ChangeRoleRequest true "目标角色"
// @Success      204 "操作成功"
// @Router       /api/users/{id}/role [patch]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.manageUseCase.ChangeRole(c.Request.Context(), id, user.Role(req.Role)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete 删除用户（管理端）
// @Summary      删除用户
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.ErrorResponse "用户不存在"
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.manageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

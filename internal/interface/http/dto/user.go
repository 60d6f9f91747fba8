package dto

// RegisterRequest HTTP层注册请求
// 说明：HTTP层的DTO，包含参数验证tag
type RegisterRequest struct {
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
}

// AdminRegisterRequest 管理端创建账号请求（可指定角色）
type AdminRegisterRequest struct {
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	Role      string `json:"role" binding:"required,oneof=CLIENT ADMIN"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest 更新用户信息请求（空字段忽略）
type UpdateProfileRequest struct {
	LastName  string `json:"last_name" binding:"omitempty,max=50"`
	FirstName string `json:"first_name" binding:"omitempty,max=50"`
}

// ChangeRoleRequest 变更角色请求
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=CLIENT ADMIN"`
}

// SetActiveRequest 启用/停用账号请求
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

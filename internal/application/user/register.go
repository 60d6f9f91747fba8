package user

import (
	"context"

	"github.com/xiebiao/gamesup/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调多个领域服务
// 2. 公开注册接口强制角色为CLIENT（防止越权注册管理员）；
//    管理员创建账号时才允许指定角色
// 3. 未来可能扩展：发送欢迎邮件、记录审计日志、触发事件等
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册（公开接口，角色固定为CLIENT）
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	return uc.register(ctx, req, user.RoleClient)
}

// ExecuteWithRole 执行注册并指定角色（仅管理端调用）
func (uc *RegisterUseCase) ExecuteWithRole(ctx context.Context, req RegisterRequest, role user.Role) (*RegisterResponse, error) {
	return uc.register(ctx, req, role)
}

func (uc *RegisterUseCase) register(ctx context.Context, req RegisterRequest, role user.Role) (*RegisterResponse, error) {
	// 1. 调用领域服务执行注册（参数校验、重复检查、密码加密都在领域层）
	u, err := uc.userService.Register(ctx, req.LastName, req.FirstName, req.Email, req.Password, role)
	if err != nil {
		return nil, err
	}

	// 2. 领域实体 → 应用层DTO
	// 说明：不直接返回领域实体，而是转换为DTO
	// 好处：领域模型变更不影响API契约
	return &RegisterResponse{
		ID:        u.ID,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Email:     u.Email,
		Role:      string(u.Role),
	}, nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	LastName  string
	FirstName string
	Email     string
	Password  string
}

// RegisterResponse 注册响应
// 说明：不返回密码字段（安全考虑）
type RegisterResponse struct {
	ID        uint   `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

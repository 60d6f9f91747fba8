package user

import (
	"context"

	"github.com/xiebiao/gamesup/internal/domain/purchase"
	"github.com/xiebiao/gamesup/internal/domain/user"
)

// ManageUsersUseCase 用户管理用例（管理端）
// 设计说明：
// 1. 查询类操作（列表、详情）和账号管理操作（启用/停用、改角色、删除）
//    聚合在同一个用例对象里，避免管理端Handler注入过多依赖
// 2. 用户详情附带消费统计（订单数、累计消费），取自订单仓储
type ManageUsersUseCase struct {
	userRepo     user.Repository
	purchaseRepo purchase.Repository
}

// NewManageUsersUseCase 创建用户管理用例
func NewManageUsersUseCase(userRepo user.Repository, purchaseRepo purchase.Repository) *ManageUsersUseCase {
	return &ManageUsersUseCase{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
	}
}

// UserDetail 用户详情DTO（附带消费统计）
type UserDetail struct {
	ID            uint   `json:"id"`
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Active        bool   `json:"active"`
	PurchaseCount int64  `json:"purchase_count"`
	TotalSpent    int64  `json:"total_spent"` // 累计消费（分），不含已取消订单
	CreatedAt     string `json:"created_at"`
}

// List 查询全部用户
func (uc *ManageUsersUseCase) List(ctx context.Context) ([]UserInfo, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toUserInfos(users), nil
}

// ListByRole 按角色查询（客户列表/管理员列表）
func (uc *ManageUsersUseCase) ListByRole(ctx context.Context, role user.Role) ([]UserInfo, error) {
	if !role.IsValid() {
		return nil, user.ErrInvalidRole
	}
	users, err := uc.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return toUserInfos(users), nil
}

// Search 关键词搜索用户（姓、名、邮箱，大小写不敏感）
func (uc *ManageUsersUseCase) Search(ctx context.Context, keyword string) ([]UserInfo, error) {
	users, err := uc.userRepo.SearchByKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toUserInfos(users), nil
}

// Get 查询用户详情（附带消费统计）
func (uc *ManageUsersUseCase) Get(ctx context.Context, id uint) (*UserDetail, error) {
	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := uc.purchaseRepo.CountByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	spent, err := uc.purchaseRepo.SumTotalByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UserDetail{
		ID:            u.ID,
		LastName:      u.LastName,
		FirstName:     u.FirstName,
		Email:         u.Email,
		Role:          string(u.Role),
		Active:        u.Active,
		PurchaseCount: count,
		TotalSpent:    spent,
		CreatedAt:     u.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// UpdateProfile 更新用户基本信息（空字段忽略）
func (uc *ManageUsersUseCase) UpdateProfile(ctx context.Context, id uint, lastName, firstName string) (*UserInfo, error) {
	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.UpdateProfile(lastName, firstName)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}

// SetActive 启用/停用账号
// 停用后该用户无法登录；已签发的Token由黑名单与有效期机制处理
func (uc *ManageUsersUseCase) SetActive(ctx context.Context, id uint, active bool) error {
	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if active {
		u.Activate()
	} else {
		u.Deactivate()
	}
	return uc.userRepo.Update(ctx, u)
}

// ChangeRole 变更用户角色
func (uc *ManageUsersUseCase) ChangeRole(ctx context.Context, id uint, role user.Role) error {
	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.ChangeRole(role); err != nil {
		return err
	}
	return uc.userRepo.Update(ctx, u)
}

// Delete 删除用户（软删除）
func (uc *ManageUsersUseCase) Delete(ctx context.Context, id uint) error {
	return uc.userRepo.Delete(ctx, id)
}

func toUserInfo(u *user.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}

func toUserInfos(users []*user.User) []UserInfo {
	list := make([]UserInfo, len(users))
	for i, u := range users {
		list[i] = toUserInfo(u)
	}
	return list
}

package user

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleClient Role = "CLIENT" // 普通客户
	RoleAdmin  Role = "ADMIN"  // 管理员
)

// IsValid 校验角色合法性
func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleAdmin
}

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体，包含用户的核心属性
// 2. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	LastName  string // 姓
	FirstName string // 名
	Email     string
	Password  string // bcrypt哈希值
	Role      Role
	Active    bool // 账号启用状态，停用后拒绝登录
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(lastName, firstName, email, hashedPassword string, role Role) *User {
	now := time.Now()
	return &User{
		LastName:  lastName,
		FirstName: firstName,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Activate 启用账号（领域行为）
func (u *User) Activate() {
	u.Active = true
	u.UpdatedAt = time.Now()
}

// Deactivate 停用账号（领域行为）
// 停用后该用户无法登录，已签发的Token由黑名单机制处理
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now()
}

// ChangeRole 变更角色（仅管理员操作）
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}

// UpdateProfile 更新基本信息（部分字段拷贝，空值忽略）
func (u *User) UpdateProfile(lastName, firstName string) {
	if lastName != "" {
		u.LastName = lastName
	}
	if firstName != "" {
		u.FirstName = firstName
	}
	u.UpdatedAt = time.Now()
}

// FullName 拼接展示用全名
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

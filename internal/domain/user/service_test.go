package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// fakeUserRepo 内存版Fake（按邮箱索引）
type fakeUserRepo struct {
	users map[string]*User // key: email
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	r.users[u.Email] = u
	return nil
}
func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*User, error) { return nil, nil }
func (r *fakeUserRepo) FindByRole(ctx context.Context, role Role) ([]*User, error) {
	return nil, nil
}
func (r *fakeUserRepo) SearchByKeyword(ctx context.Context, keyword string) ([]*User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error { return nil }

// newLoginTestService 预置一个启用账号和一个停用账号
// 测试里用最低cost加密，避免bcrypt拖慢测试
func newLoginTestService(t *testing.T) Service {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err, "密码加密失败")

	active := NewUser("Dupont", "Alice", "alice@gamesup.fr", string(hashed), RoleClient)
	disabled := NewUser("Martin", "Bob", "bob@gamesup.fr", string(hashed), RoleClient)
	disabled.Deactivate()

	return NewService(&fakeUserRepo{users: map[string]*User{
		active.Email:   active,
		disabled.Email: disabled,
	}})
}

// TestLogin 测试登录的各个分支
// 安全要点：邮箱不存在和密码错误必须返回同一个401错误，
// 响应差异会暴露某个邮箱是否已注册
func TestLogin(t *testing.T) {
	svc := newLoginTestService(t)
	ctx := context.Background()

	t.Run("正常登录", func(t *testing.T) {
		u, err := svc.Login(ctx, "alice@gamesup.fr", "secret123")
		require.NoError(t, err, "登录应成功")
		assert.Equal(t, "alice@gamesup.fr", u.Email)
		t.Log("✅ 正常登录测试通过")
	})

	t.Run("密码错误返回统一凭证错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@gamesup.fr", "wrong-password")
		assert.ErrorIs(t, err, apperrors.ErrBadCredentials, "密码错误应返回统一凭证错误")
		t.Log("✅ 密码错误测试通过")
	})

	t.Run("邮箱不存在返回统一凭证错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@gamesup.fr", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrBadCredentials, "未注册邮箱应返回统一凭证错误")
		assert.NotErrorIs(t, err, apperrors.ErrUserNotFound, "不能返回404类错误暴露账号是否存在")
		t.Log("✅ 未注册邮箱测试通过")
	})

	t.Run("停用账号不能登录", func(t *testing.T) {
		_, err := svc.Login(ctx, "bob@gamesup.fr", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled, "停用账号应被拒绝")
		t.Log("✅ 停用账号测试通过")
	})
}

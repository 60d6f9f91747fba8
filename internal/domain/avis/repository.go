package avis

import (
	"context"
)

// Repository 评价仓储接口
type Repository interface {
	// Create 创建评价
	Create(ctx context.Context, a *Avis) error

	// FindByID 根据ID查找评价
	// 如果不存在，返回ErrAvisNotFound
	FindByID(ctx context.Context, id uint) (*Avis, error)

	// FindByGameID 查询游戏的全部评价（按创建时间倒序，同时间按ID倒序）
	FindByGameID(ctx context.Context, gameID uint) ([]*Avis, error)

	// FindApprovedByGameID 查询游戏的已审核评价（排序同上），用于评分聚合
	FindApprovedByGameID(ctx context.Context, gameID uint) ([]*Avis, error)

	// FindByUserID 查询用户发表的全部评价
	FindByUserID(ctx context.Context, userID uint) ([]*Avis, error)

	// FindAll 查询全部评价（管理端审核列表）
	FindAll(ctx context.Context) ([]*Avis, error)

	// Update 更新评价（内容修改、审核通过）
	Update(ctx context.Context, a *Avis) error

	// Delete 删除评价
	// 如果不存在，返回ErrAvisNotFound
	Delete(ctx context.Context, id uint) error
}

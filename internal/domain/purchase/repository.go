package purchase

import (
	"context"
)

// Repository 订单仓储接口（依赖倒置原则）
// 由domain层定义接口，infrastructure层实现；
// 创建订单时订单和明细必须在同一事务中写入（通过context传递事务）。
type Repository interface {
	// Create 创建订单（包含订单明细）
	Create(ctx context.Context, p *Purchase) error

	// FindByID 根据ID查找订单（包含订单明细）
	// 如果不存在，返回ErrPurchaseNotFound
	FindByID(ctx context.Context, id uint) (*Purchase, error)

	// FindByPurchaseNo 根据订单号查找订单
	FindByPurchaseNo(ctx context.Context, purchaseNo string) (*Purchase, error)

	// FindAll 查询全部订单（管理端）
	FindAll(ctx context.Context) ([]*Purchase, error)

	// ListByUserID 查询用户的订单列表
	// 支持分页，避免一次性查询大量数据
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Purchase, int64, error)

	// CountByUserID 统计用户订单数（用户消费统计）
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// SumTotalByUserID 统计用户累计消费金额（分），只计入未取消订单
	SumTotalByUserID(ctx context.Context, userID uint) (int64, error)

	// Update 更新订单（主要用于状态更新）
	Update(ctx context.Context, p *Purchase) error

	// Delete 删除订单（级联删除明细）
	// 如果不存在，返回ErrPurchaseNotFound
	Delete(ctx context.Context, id uint) error
}

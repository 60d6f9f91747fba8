package catalog

import (
	"context"
)

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	// Create 创建分类
	// 注意：类型名重复时返回ErrCategoryTypeDuplicate
	Create(ctx context.Context, category *Category) error

	// FindByID 根据ID查找分类
	// 如果不存在，返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindAll 查询全部分类
	FindAll(ctx context.Context) ([]*Category, error)

	// Update 更新分类
	Update(ctx context.Context, category *Category) error

	// Delete 删除分类
	// 如果不存在，返回ErrCategoryNotFound
	Delete(ctx context.Context, id uint) error
}

// PublisherRepository 出版商仓储接口
type PublisherRepository interface {
	// Create 创建出版商
	// 注意：名称重复时返回ErrPublisherNameDuplicate
	Create(ctx context.Context, publisher *Publisher) error

	// FindByID 根据ID查找出版商
	// 如果不存在，返回ErrPublisherNotFound
	FindByID(ctx context.Context, id uint) (*Publisher, error)

	// FindAll 查询全部出版商
	FindAll(ctx context.Context) ([]*Publisher, error)

	// Update 更新出版商
	Update(ctx context.Context, publisher *Publisher) error

	// Delete 删除出版商
	Delete(ctx context.Context, id uint) error
}

// AuthorRepository 作者仓储接口
type AuthorRepository interface {
	// Create 创建作者
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者
	// 如果不存在，返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByIDs 批量查找作者（用于Game的作者集合）
	FindByIDs(ctx context.Context, ids []uint) ([]*Author, error)

	// FindAll 查询全部作者
	FindAll(ctx context.Context) ([]*Author, error)

	// Update 更新作者
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者
	Delete(ctx context.Context, id uint) error
}

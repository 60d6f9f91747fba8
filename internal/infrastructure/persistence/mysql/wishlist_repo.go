package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/gamesup/internal/domain/wishlist"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// wishlistRepository 心愿单仓储实现（MySQL）
// (user_id, game_id)复合唯一索引冲突转换为ErrDuplicateItem
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓储
func NewWishlistRepository(db *gorm.DB) wishlist.Repository {
	return &wishlistRepository{db: db}
}

// Create 创建条目
func (r *wishlistRepository) Create(ctx context.Context, item *wishlist.Item) error {
	model := &WishlistModel{
		UserID:   item.UserID,
		GameID:   item.GameID,
		Priority: item.Priority,
		Note:     item.Note,
		AddedAt:  item.AddedAt,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return wishlist.ErrDuplicateItem
		}
		return apperrors.Wrap(err, "创建心愿单条目失败")
	}

	item.ID = model.ID
	item.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找条目
func (r *wishlistRepository) FindByID(ctx context.Context, id uint) (*wishlist.Item, error) {
	var model WishlistModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, wishlist.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询心愿单条目失败")
	}
	return toWishlistEntity(&model), nil
}

// FindByUserID 查询用户的心愿单（优先级倒序，同优先级按加入时间倒序）
func (r *wishlistRepository) FindByUserID(ctx context.Context, userID uint) ([]*wishlist.Item, error) {
	var models []WishlistModel
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("priority DESC, added_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询心愿单失败")
	}

	items := make([]*wishlist.Item, len(models))
	for i := range models {
		items[i] = toWishlistEntity(&models[i])
	}
	return items, nil
}

// FindByUserAndGame 查询用户是否已收藏某游戏
func (r *wishlistRepository) FindByUserAndGame(ctx context.Context, userID, gameID uint) (*wishlist.Item, error) {
	var model WishlistModel
	err := getDB(ctx, r.db).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, wishlist.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询心愿单条目失败")
	}
	return toWishlistEntity(&model), nil
}

// Update 更新条目
func (r *wishlistRepository) Update(ctx context.Context, item *wishlist.Item) error {
	model := &WishlistModel{
		ID:       item.ID,
		UserID:   item.UserID,
		GameID:   item.GameID,
		Priority: item.Priority,
		Note:     item.Note,
		AddedAt:  item.AddedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新心愿单条目失败")
	}

	item.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除条目
func (r *wishlistRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&WishlistModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除心愿单条目失败")
	}
	if result.RowsAffected == 0 {
		return wishlist.ErrItemNotFound
	}
	return nil
}

// toWishlistEntity GORM模型 → 领域实体
func toWishlistEntity(model *WishlistModel) *wishlist.Item {
	return &wishlist.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		GameID:    model.GameID,
		Priority:  model.Priority,
		Note:      model.Note,
		AddedAt:   model.AddedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

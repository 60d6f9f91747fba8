package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/gamesup/internal/domain/avis"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// avisRepository 评价仓储实现（MySQL）
// 列表查询统一按创建时间倒序、同时间按ID倒序，保证排序稳定
type avisRepository struct {
	db *gorm.DB
}

// NewAvisRepository 创建评价仓储
func NewAvisRepository(db *gorm.DB) avis.Repository {
	return &avisRepository{db: db}
}

// Create 创建评价
func (r *avisRepository) Create(ctx context.Context, a *avis.Avis) error {
	model := &AvisModel{
		UserID:   a.UserID,
		GameID:   a.GameID,
		Comment:  a.Comment,
		Rating:   a.Rating,
		Approved: a.Approved,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建评价失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找评价
func (r *avisRepository) FindByID(ctx context.Context, id uint) (*avis.Avis, error) {
	var model AvisModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, avis.ErrAvisNotFound
		}
		return nil, apperrors.Wrap(err, "查询评价失败")
	}
	return toAvisEntity(&model), nil
}

// FindByGameID 查询游戏的全部评价
func (r *avisRepository) FindByGameID(ctx context.Context, gameID uint) ([]*avis.Avis, error) {
	var models []AvisModel
	err := getDB(ctx, r.db).
		Where("game_id = ?", gameID).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评价列表失败")
	}
	return toAvisEntities(models), nil
}

// FindApprovedByGameID 查询游戏的已审核评价（评分聚合用）
func (r *avisRepository) FindApprovedByGameID(ctx context.Context, gameID uint) ([]*avis.Avis, error) {
	var models []AvisModel
	err := getDB(ctx, r.db).
		Where("game_id = ? AND approved = ?", gameID, true).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询已审核评价失败")
	}
	return toAvisEntities(models), nil
}

// FindByUserID 查询用户发表的全部评价
func (r *avisRepository) FindByUserID(ctx context.Context, userID uint) ([]*avis.Avis, error) {
	var models []AvisModel
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评价列表失败")
	}
	return toAvisEntities(models), nil
}

// FindAll 查询全部评价（管理端审核列表）
func (r *avisRepository) FindAll(ctx context.Context) ([]*avis.Avis, error) {
	var models []AvisModel
	err := getDB(ctx, r.db).Order("created_at DESC, id DESC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评价列表失败")
	}
	return toAvisEntities(models), nil
}

// Update 更新评价
func (r *avisRepository) Update(ctx context.Context, a *avis.Avis) error {
	model := &AvisModel{
		ID:        a.ID,
		UserID:    a.UserID,
		GameID:    a.GameID,
		Comment:   a.Comment,
		Rating:    a.Rating,
		Approved:  a.Approved,
		CreatedAt: a.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新评价失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除评价
func (r *avisRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AvisModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除评价失败")
	}
	if result.RowsAffected == 0 {
		return avis.ErrAvisNotFound
	}
	return nil
}

// toAvisEntity GORM模型 → 领域实体
func toAvisEntity(model *AvisModel) *avis.Avis {
	return &avis.Avis{
		ID:        model.ID,
		UserID:    model.UserID,
		GameID:    model.GameID,
		Comment:   model.Comment,
		Rating:    model.Rating,
		Approved:  model.Approved,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toAvisEntities(models []AvisModel) []*avis.Avis {
	reviews := make([]*avis.Avis, len(models))
	for i := range models {
		reviews[i] = toAvisEntity(&models[i])
	}
	return reviews
}

package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/gamesup/internal/domain/purchase"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// purchaseRepository 订单仓储实现（MySQL）
// 设计说明：
// 1. Purchase和Line是聚合关系，创建时在同一事务中一起写入
// 2. 查询时使用Preload预加载明细，避免N+1问题
// 3. 事务通过context传递（getDB辅助函数提取）
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository 创建订单仓储
func NewPurchaseRepository(db *gorm.DB) purchase.Repository {
	return &purchaseRepository{db: db}
}

// Create 创建订单（GORM通过foreignKey自动保存Lines）
func (r *purchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	model := toPurchaseModel(p)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID
	p.ID = model.ID
	for i := range p.Lines {
		p.Lines[i].ID = model.Lines[i].ID
		p.Lines[i].PurchaseID = model.ID
	}

	return nil
}

// FindByID 根据ID查找订单（预加载明细）
func (r *purchaseRepository) FindByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	var model PurchaseModel
	err := getDB(ctx, r.db).Preload("Lines").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, purchase.ErrPurchaseNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toPurchaseEntity(&model), nil
}

// FindByPurchaseNo 根据订单号查找订单
func (r *purchaseRepository) FindByPurchaseNo(ctx context.Context, purchaseNo string) (*purchase.Purchase, error) {
	var model PurchaseModel
	err := getDB(ctx, r.db).Preload("Lines").Where("purchase_no = ?", purchaseNo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, purchase.ErrPurchaseNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toPurchaseEntity(&model), nil
}

// FindAll 查询全部订单（管理端，含明细）
func (r *purchaseRepository) FindAll(ctx context.Context) ([]*purchase.Purchase, error) {
	var models []PurchaseModel
	err := getDB(ctx, r.db).Preload("Lines").Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	purchases := make([]*purchase.Purchase, len(models))
	for i := range models {
		purchases[i] = toPurchaseEntity(&models[i])
	}
	return purchases, nil
}

// ListByUserID 查询用户的订单列表（分页）
func (r *purchaseRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*purchase.Purchase, int64, error) {
	var models []PurchaseModel
	var total int64

	query := getDB(ctx, r.db).Model(&PurchaseModel{}).Where("user_id = ?", userID)

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	// 分页查询（包含明细）
	offset := (page - 1) * pageSize
	err := query.Preload("Lines").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	purchases := make([]*purchase.Purchase, len(models))
	for i := range models {
		purchases[i] = toPurchaseEntity(&models[i])
	}
	return purchases, total, nil
}

// CountByUserID 统计用户订单数
func (r *purchaseRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&PurchaseModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计订单数失败")
	}
	return count, nil
}

// SumTotalByUserID 统计用户累计消费金额（分），只计入未取消订单
func (r *purchaseRepository) SumTotalByUserID(ctx context.Context, userID uint) (int64, error) {
	var sum int64
	err := getDB(ctx, r.db).Model(&PurchaseModel{}).
		Where("user_id = ? AND status <> ?", userID, string(purchase.StatusCancelled)).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计消费金额失败")
	}
	return sum, nil
}

// Update 更新订单（头部字段与明细差量同步）
// 设计说明：
// 1. 明细行在内存中可能被修改或移除（改数量/折扣、删行），
//    头部的total是从明细推导的，两者必须一起落库才能保持一致
// 2. 差量同步：逐行Save（有ID更新、无ID新增），再删除聚合中已不存在的行
// 3. 调用方负责把本方法放进事务（与库存调整同一事务）
func (r *purchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	db := getDB(ctx, r.db)

	result := db.Model(&PurchaseModel{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"status":     string(p.Status),
		"paid":       p.Paid,
		"delivered":  p.Delivered,
		"archived":   p.Archived,
		"total":      p.Total,
		"updated_at": p.UpdatedAt,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}

	if result.RowsAffected == 0 {
		return purchase.ErrPurchaseNotFound
	}

	// 明细差量同步
	keepIDs := make([]uint, 0, len(p.Lines))
	for i := range p.Lines {
		l := &p.Lines[i]
		model := PurchaseLineModel{
			ID:            l.ID,
			PurchaseID:    p.ID,
			GameID:        l.GameID,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			DiscountPrice: l.DiscountPrice,
		}
		if err := db.Save(&model).Error; err != nil {
			return apperrors.Wrap(err, "更新订单明细失败")
		}
		l.ID = model.ID
		l.PurchaseID = p.ID
		keepIDs = append(keepIDs, model.ID)
	}

	// 删除被移除的行（聚合中已不存在）
	cleanup := db.Where("purchase_id = ?", p.ID)
	if len(keepIDs) > 0 {
		cleanup = cleanup.Where("id NOT IN ?", keepIDs)
	}
	if err := cleanup.Delete(&PurchaseLineModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除订单明细失败")
	}

	return nil
}

// Delete 删除订单（级联删除明细）
func (r *purchaseRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	result := db.Delete(&PurchaseModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除订单失败")
	}
	if result.RowsAffected == 0 {
		return purchase.ErrPurchaseNotFound
	}

	// 级联删除明细
	if err := db.Where("purchase_id = ?", id).Delete(&PurchaseLineModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除订单明细失败")
	}

	return nil
}

// toPurchaseModel 领域实体 → GORM模型
func toPurchaseModel(p *purchase.Purchase) *PurchaseModel {
	lines := make([]PurchaseLineModel, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = PurchaseLineModel{
			ID:            l.ID,
			PurchaseID:    l.PurchaseID,
			GameID:        l.GameID,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			DiscountPrice: l.DiscountPrice,
		}
	}

	return &PurchaseModel{
		ID:         p.ID,
		PurchaseNo: p.PurchaseNo,
		UserID:     p.UserID,
		Date:       p.Date,
		Total:      p.Total,
		Status:     string(p.Status),
		Paid:       p.Paid,
		Delivered:  p.Delivered,
		Archived:   p.Archived,
		Lines:      lines,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// toPurchaseEntity GORM模型 → 领域实体
func toPurchaseEntity(model *PurchaseModel) *purchase.Purchase {
	lines := make([]purchase.Line, len(model.Lines))
	for i, l := range model.Lines {
		lines[i] = purchase.Line{
			ID:            l.ID,
			PurchaseID:    l.PurchaseID,
			GameID:        l.GameID,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			DiscountPrice: l.DiscountPrice,
		}
	}

	return &purchase.Purchase{
		ID:         model.ID,
		PurchaseNo: model.PurchaseNo,
		UserID:     model.UserID,
		Date:       model.Date,
		Total:      model.Total,
		Status:     purchase.Status(model.Status),
		Paid:       model.Paid,
		Delivered:  model.Delivered,
		Archived:   model.Archived,
		Lines:      lines,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

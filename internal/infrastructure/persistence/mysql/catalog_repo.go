package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/gamesup/internal/domain/catalog"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 目录仓储实现（分类、出版商、作者）
// 三个仓储结构相同，统一放在一个文件里；唯一性冲突都由数据库
// UNIQUE索引捕获后转换为对应的业务错误。

// categoryRepository 分类仓储实现（MySQL）
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) catalog.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create 创建分类
func (r *categoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	model := &CategoryModel{
		Type:        c.Type,
		Description: c.Description,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrCategoryTypeDuplicate
		}
		return apperrors.Wrap(err, "创建分类失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model CategoryModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

// FindAll 查询全部分类
func (r *categoryRepository) FindAll(ctx context.Context) ([]*catalog.Category, error) {
	var models []CategoryModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*catalog.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

// Update 更新分类
func (r *categoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	model := &CategoryModel{
		ID:          c.ID,
		Type:        c.Type,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrCategoryTypeDuplicate
		}
		return apperrors.Wrap(err, "更新分类失败")
	}

	c.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除分类
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CategoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrCategoryNotFound
	}
	return nil
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *catalog.Category {
	return &catalog.Category{
		ID:          model.ID,
		Type:        model.Type,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// publisherRepository 出版商仓储实现（MySQL）
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版商仓储
func NewPublisherRepository(db *gorm.DB) catalog.PublisherRepository {
	return &publisherRepository{db: db}
}

// Create 创建出版商
func (r *publisherRepository) Create(ctx context.Context, p *catalog.Publisher) error {
	model := &PublisherModel{
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
		Country:     p.Country,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrPublisherNameDuplicate
		}
		return apperrors.Wrap(err, "创建出版商失败")
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找出版商
func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*catalog.Publisher, error) {
	var model PublisherModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "查询出版商失败")
	}
	return toPublisherEntity(&model), nil
}

// FindAll 查询全部出版商
func (r *publisherRepository) FindAll(ctx context.Context) ([]*catalog.Publisher, error) {
	var models []PublisherModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询出版商列表失败")
	}

	publishers := make([]*catalog.Publisher, len(models))
	for i := range models {
		publishers[i] = toPublisherEntity(&models[i])
	}
	return publishers, nil
}

// Update 更新出版商
func (r *publisherRepository) Update(ctx context.Context, p *catalog.Publisher) error {
	model := &PublisherModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
		Country:     p.Country,
		CreatedAt:   p.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrPublisherNameDuplicate
		}
		return apperrors.Wrap(err, "更新出版商失败")
	}

	p.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除出版商
func (r *publisherRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&PublisherModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除出版商失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrPublisherNotFound
	}
	return nil
}

// toPublisherEntity GORM模型 → 领域实体
func toPublisherEntity(model *PublisherModel) *catalog.Publisher {
	return &catalog.Publisher{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Website:     model.Website,
		Country:     model.Country,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// authorRepository 作者仓储实现（MySQL）
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) catalog.AuthorRepository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *catalog.Author) error {
	model := &AuthorModel{
		Name:      a.Name,
		Biography: a.Biography,
		Country:   a.Country,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*catalog.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// FindByIDs 批量查找作者
func (r *authorRepository) FindByIDs(ctx context.Context, ids []uint) ([]*catalog.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []AuthorModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询作者失败")
	}

	authors := make([]*catalog.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// FindAll 查询全部作者
func (r *authorRepository) FindAll(ctx context.Context) ([]*catalog.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*catalog.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// Update 更新作者
func (r *authorRepository) Update(ctx context.Context, a *catalog.Author) error {
	model := &AuthorModel{
		ID:        a.ID,
		Name:      a.Name,
		Biography: a.Biography,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新作者失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrAuthorNotFound
	}
	return nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *catalog.Author {
	return &catalog.Author{
		ID:        model.ID,
		Name:      model.Name,
		Biography: model.Biography,
		Country:   model.Country,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

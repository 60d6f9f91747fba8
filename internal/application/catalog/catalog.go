package catalog

import (
	"context"

	"github.com/xiebiao/gamesup/internal/domain/catalog"
)

// 目录维度（分类/出版商/作者）的CRUD用例
// 设计说明：
// 1. 三个聚合的用例形态完全一致，集中在一个文件便于对照维护
// 2. 删除不做引用检查：游戏表持有的是外键引用，是否允许悬挂
//    由数据库约束兜底（MySQL默认RESTRICT会拒绝删除被引用行）

// =========================================
// 分类
// =========================================

// CategoryUseCase 分类管理用例
type CategoryUseCase struct {
	repo catalog.CategoryRepository
}

// NewCategoryUseCase 创建分类用例
func NewCategoryUseCase(repo catalog.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// CategoryDTO 分类DTO
type CategoryDTO struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Create 创建分类（type唯一）
func (uc *CategoryUseCase) Create(ctx context.Context, categoryType, description string) (*CategoryDTO, error) {
	c, err := catalog.NewCategory(categoryType, description)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	dto := toCategoryDTO(c)
	return &dto, nil
}

// Get 查询分类
func (uc *CategoryUseCase) Get(ctx context.Context, id uint) (*CategoryDTO, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toCategoryDTO(c)
	return &dto, nil
}

// List 查询全部分类
func (uc *CategoryUseCase) List(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		list[i] = toCategoryDTO(c)
	}
	return list, nil
}

// Update 更新分类（空字段忽略）
func (uc *CategoryUseCase) Update(ctx context.Context, id uint, categoryType, description string) (*CategoryDTO, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Update(categoryType, description)
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	dto := toCategoryDTO(c)
	return &dto, nil
}

// Delete 删除分类
func (uc *CategoryUseCase) Delete(ctx context.Context, id uint) error {
	return uc.repo.Delete(ctx, id)
}

func toCategoryDTO(c *catalog.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Type: c.Type, Description: c.Description}
}

// =========================================
// 出版商
// =========================================

// PublisherUseCase 出版商管理用例
type PublisherUseCase struct {
	repo catalog.PublisherRepository
}

// NewPublisherUseCase 创建出版商用例
func NewPublisherUseCase(repo catalog.PublisherRepository) *PublisherUseCase {
	return &PublisherUseCase{repo: repo}
}

// PublisherDTO 出版商DTO
type PublisherDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Country     string `json:"country"`
}

// Create 创建出版商（name唯一）
func (uc *PublisherUseCase) Create(ctx context.Context, name, description, website, country string) (*PublisherDTO, error) {
	p, err := catalog.NewPublisher(name, description, website, country)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	dto := toPublisherDTO(p)
	return &dto, nil
}

// Get 查询出版商
func (uc *PublisherUseCase) Get(ctx context.Context, id uint) (*PublisherDTO, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toPublisherDTO(p)
	return &dto, nil
}

// List 查询全部出版商
func (uc *PublisherUseCase) List(ctx context.Context) ([]PublisherDTO, error) {
	publishers, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]PublisherDTO, len(publishers))
	for i, p := range publishers {
		list[i] = toPublisherDTO(p)
	}
	return list, nil
}

// Update 更新出版商（空字段忽略）
func (uc *PublisherUseCase) Update(ctx context.Context, id uint, name, description, website, country string) (*PublisherDTO, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Update(name, description, website, country)
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	dto := toPublisherDTO(p)
	return &dto, nil
}

// Delete 删除出版商
func (uc *PublisherUseCase) Delete(ctx context.Context, id uint) error {
	return uc.repo.Delete(ctx, id)
}

func toPublisherDTO(p *catalog.Publisher) PublisherDTO {
	return PublisherDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
		Country:     p.Country,
	}
}

// =========================================
// 作者
// =========================================

// AuthorUseCase 作者管理用例
type AuthorUseCase struct {
	repo catalog.AuthorRepository
}

// NewAuthorUseCase 创建作者用例
func NewAuthorUseCase(repo catalog.AuthorRepository) *AuthorUseCase {
	return &AuthorUseCase{repo: repo}
}

// AuthorDTO 作者DTO
type AuthorDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
	Country   string `json:"country"`
}

// Create 创建作者（作者名允许重复，现实中存在同名设计师）
func (uc *AuthorUseCase) Create(ctx context.Context, name, biography, country string) (*AuthorDTO, error) {
	a, err := catalog.NewAuthor(name, biography, country)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	dto := toAuthorDTO(a)
	return &dto, nil
}

// Get 查询作者
func (uc *AuthorUseCase) Get(ctx context.Context, id uint) (*AuthorDTO, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toAuthorDTO(a)
	return &dto, nil
}

// List 查询全部作者
func (uc *AuthorUseCase) List(ctx context.Context) ([]AuthorDTO, error) {
	authors, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]AuthorDTO, len(authors))
	for i, a := range authors {
		list[i] = toAuthorDTO(a)
	}
	return list, nil
}

// Update 更新作者（空字段忽略）
func (uc *AuthorUseCase) Update(ctx context.Context, id uint, name, biography, country string) (*AuthorDTO, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Update(name, biography, country)
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	dto := toAuthorDTO(a)
	return &dto, nil
}

// Delete 删除作者
func (uc *AuthorUseCase) Delete(ctx context.Context, id uint) error {
	return uc.repo.Delete(ctx, id)
}

func toAuthorDTO(a *catalog.Author) AuthorDTO {
	return AuthorDTO{ID: a.ID, Name: a.Name, Biography: a.Biography, Country: a.Country}
}

package catalog

import (
	"time"
)

// 目录基础数据：分类、出版商、作者
// 设计说明：
// 1. 三者都是独立聚合，仅被Game以外键引用（删除不级联到Game）
// 2. 唯一性约束（分类类型、出版商名称）由数据库UNIQUE索引保证
// 3. 更新采用部分字段拷贝，空值忽略

// Category 游戏分类
type Category struct {
	ID          uint
	Type        string // 分类类型名（唯一），如"Strategy"
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建分类（工厂方法）
func NewCategory(categoryType, description string) (*Category, error) {
	if categoryType == "" {
		return nil, ErrInvalidCategoryType
	}
	now := time.Now()
	return &Category{
		Type:        categoryType,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update 更新分类信息
func (c *Category) Update(categoryType, description string) {
	if categoryType != "" {
		c.Type = categoryType
	}
	if description != "" {
		c.Description = description
	}
	c.UpdatedAt = time.Now()
}

// Publisher 出版商
type Publisher struct {
	ID          uint
	Name        string // 名称（唯一）
	Description string
	Website     string
	Country     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPublisher 创建出版商（工厂方法）
func NewPublisher(name, description, website, country string) (*Publisher, error) {
	if name == "" {
		return nil, ErrInvalidPublisherName
	}
	now := time.Now()
	return &Publisher{
		Name:        name,
		Description: description,
		Website:     website,
		Country:     country,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update 更新出版商信息
func (p *Publisher) Update(name, description, website, country string) {
	if name != "" {
		p.Name = name
	}
	if description != "" {
		p.Description = description
	}
	if website != "" {
		p.Website = website
	}
	if country != "" {
		p.Country = country
	}
	p.UpdatedAt = time.Now()
}

// Author 游戏作者（设计师）
type Author struct {
	ID        uint
	Name      string
	Biography string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建作者（工厂方法）
func NewAuthor(name, biography, country string) (*Author, error) {
	if name == "" {
		return nil, ErrInvalidAuthorName
	}
	now := time.Now()
	return &Author{
		Name:      name,
		Biography: biography,
		Country:   country,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update 更新作者信息
func (a *Author) Update(name, biography, country string) {
	if name != "" {
		a.Name = name
	}
	if biography != "" {
		a.Biography = biography
	}
	if country != "" {
		a.Country = country
	}
	a.UpdatedAt = time.Now()
}

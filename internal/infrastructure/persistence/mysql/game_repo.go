package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/gamesup/internal/domain/game"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// gameRepository 游戏仓储实现（MySQL）
// 设计说明：
// 1. 实现domain/game/repository.go定义的接口
// 2. 作者多对多关联通过GORM的Association API维护
// 3. 关键词搜索用LIKE下推到SQL（utf8mb4_general_ci排序规则
//    本身大小写不敏感，LOWER仅作防御）
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository 创建游戏仓储
func NewGameRepository(db *gorm.DB) game.Repository {
	return &gameRepository{db: db}
}

// Create 创建游戏
func (r *gameRepository) Create(ctx context.Context, g *game.Game) error {
	model := toGameModel(g)

	// GORM会通过many2many自动写入game_authors连接表
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建游戏失败")
	}

	g.ID = model.ID
	g.CreatedAt = model.CreatedAt
	g.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找游戏（预加载作者关联）
func (r *gameRepository) FindByID(ctx context.Context, id uint) (*game.Game, error) {
	var model GameModel
	err := getDB(ctx, r.db).Preload("Authors").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.ErrGameNotFound
		}
		return nil, apperrors.Wrap(err, "查询游戏失败")
	}
	return toGameEntity(&model), nil
}

// FindByIDs 批量查找，保持入参顺序（推荐结果的次序有意义）
func (r *gameRepository) FindByIDs(ctx context.Context, ids []uint) ([]*game.Game, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []GameModel
	err := getDB(ctx, r.db).Preload("Authors").Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "批量查询游戏失败")
	}

	// 按入参顺序重排（SQL的IN不保证顺序）
	byID := make(map[uint]*game.Game, len(models))
	for i := range models {
		byID[models[i].ID] = toGameEntity(&models[i])
	}

	games := make([]*game.Game, 0, len(ids))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			games = append(games, g)
		}
	}
	return games, nil
}

// FindAll 按存储顺序查询全部游戏
func (r *gameRepository) FindAll(ctx context.Context) ([]*game.Game, error) {
	var models []GameModel
	err := getDB(ctx, r.db).Preload("Authors").Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询游戏列表失败")
	}
	return toGameEntities(models), nil
}

// FindFirst 按存储顺序取前limit个（推荐服务降级用）
func (r *gameRepository) FindFirst(ctx context.Context, limit int) ([]*game.Game, error) {
	var models []GameModel
	err := getDB(ctx, r.db).Preload("Authors").Order("id ASC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询游戏列表失败")
	}
	return toGameEntities(models), nil
}

// SearchByKeyword 关键词预过滤
// 空关键词返回全部游戏（空子串匹配一切）
func (r *gameRepository) SearchByKeyword(ctx context.Context, keyword string) ([]*game.Game, error) {
	query := getDB(ctx, r.db).Preload("Authors").Order("id ASC")
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}

	var models []GameModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "搜索游戏失败")
	}
	return toGameEntities(models), nil
}

// FindByAuthorName 按作者名查询（走game_authors关联表）
func (r *gameRepository) FindByAuthorName(ctx context.Context, name string) ([]*game.Game, error) {
	var models []GameModel
	err := getDB(ctx, r.db).Preload("Authors").
		Joins("JOIN game_authors ON game_authors.game_model_id = games.id").
		Joins("JOIN authors ON authors.id = game_authors.author_model_id").
		Where("LOWER(authors.name) = LOWER(?)", name).
		Order("games.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按作者查询游戏失败")
	}
	return toGameEntities(models), nil
}

// Update 更新游戏（含作者关联的替换）
func (r *gameRepository) Update(ctx context.Context, g *game.Game) error {
	db := getDB(ctx, r.db)
	model := toGameModel(g)
	model.ID = g.ID
	model.CreatedAt = g.CreatedAt

	// 先更新标量字段（Save会写入全部字段，包括false的Available）
	if err := db.Omit("Authors").Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新游戏失败")
	}

	// 再替换作者关联（ReplaceAssociations：先删旧关联再写新关联）
	if err := db.Model(model).Association("Authors").Replace(model.Authors); err != nil {
		return apperrors.Wrap(err, "更新游戏作者失败")
	}

	g.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除游戏（软删除），并一并删除其库存记录
func (r *gameRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	result := db.Delete(&GameModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除游戏失败")
	}
	if result.RowsAffected == 0 {
		return game.ErrGameNotFound
	}

	// 级联删除库存记录（一对一归属）
	if err := db.Where("game_id = ?", id).Delete(&InventoryModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除游戏库存失败")
	}

	return nil
}

// toGameModel 领域实体 → GORM模型
func toGameModel(g *game.Game) *GameModel {
	authors := make([]AuthorModel, len(g.AuthorIDs))
	for i, id := range g.AuthorIDs {
		authors[i] = AuthorModel{ID: id}
	}

	return &GameModel{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		Edition:     g.Edition,
		AgeMin:      g.AgeMin,
		PlayersMin:  g.PlayersMin,
		PlayersMax:  g.PlayersMax,
		Duration:    g.Duration,
		Available:   g.Available,
		CategoryID:  g.CategoryID,
		PublisherID: g.PublisherID,
		Authors:     authors,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// toGameEntity GORM模型 → 领域实体
func toGameEntity(model *GameModel) *game.Game {
	authorIDs := make([]uint, len(model.Authors))
	for i, a := range model.Authors {
		authorIDs[i] = a.ID
	}

	return &game.Game{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Edition:     model.Edition,
		AgeMin:      model.AgeMin,
		PlayersMin:  model.PlayersMin,
		PlayersMax:  model.PlayersMax,
		Duration:    model.Duration,
		Available:   model.Available,
		CategoryID:  model.CategoryID,
		PublisherID: model.PublisherID,
		AuthorIDs:   authorIDs,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func toGameEntities(models []GameModel) []*game.Game {
	games := make([]*game.Game, len(models))
	for i := range models {
		games[i] = toGameEntity(&models[i])
	}
	return games
}

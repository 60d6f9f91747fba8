package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/xiebiao/gamesup/internal/domain/avis"
	"github.com/xiebiao/gamesup/internal/domain/catalog"
	"github.com/xiebiao/gamesup/internal/domain/game"
	"github.com/xiebiao/gamesup/internal/domain/inventory"
)

// GetGameUseCase 游戏详情查询用例
// 设计说明：详情页是读模型的拼装点，聚合了四个维度：
// 游戏本体、目录信息（分类/出版商/作者名）、库存、评分聚合
type GetGameUseCase struct {
	gameRepo      game.Repository
	inventoryRepo inventory.Repository
	avisRepo      avis.Repository
	categoryRepo  catalog.CategoryRepository
	publisherRepo catalog.PublisherRepository
	authorRepo    catalog.AuthorRepository
}

// NewGetGameUseCase 创建详情查询用例
func NewGetGameUseCase(
	gameRepo game.Repository,
	inventoryRepo inventory.Repository,
	avisRepo avis.Repository,
	categoryRepo catalog.CategoryRepository,
	publisherRepo catalog.PublisherRepository,
	authorRepo catalog.AuthorRepository,
) *GetGameUseCase {
	return &GetGameUseCase{
		gameRepo:      gameRepo,
		inventoryRepo: inventoryRepo,
		avisRepo:      avisRepo,
		categoryRepo:  categoryRepo,
		publisherRepo: publisherRepo,
		authorRepo:    authorRepo,
	}
}

// AuthorRef 作者引用DTO
type AuthorRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// StockInfo 库存信息DTO
type StockInfo struct {
	Stock        int  `json:"stock"`
	StockMinimum int  `json:"stock_minimum"`
	Available    bool `json:"available"`
	LowStock     bool `json:"low_stock"`
}

// GameDetail 游戏详情DTO
// AverageRating为null表示尚无已审核评价（区别于平均分0）
type GameDetail struct {
	ID            uint        `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         int64       `json:"price"` // 价格（分）
	PriceEuros    string      `json:"price_euros"`
	Edition       int         `json:"edition"`
	AgeMin        int         `json:"age_min"`
	PlayersMin    int         `json:"players_min"`
	PlayersMax    int         `json:"players_max"`
	Duration      int         `json:"duration"`
	Available     bool        `json:"available"`
	CategoryID    uint        `json:"category_id"`
	Category      string      `json:"category"`
	PublisherID   uint        `json:"publisher_id"`
	Publisher     string      `json:"publisher"`
	Authors       []AuthorRef `json:"authors"`
	AverageRating *float64    `json:"average_rating"`
	ReviewCount   int         `json:"review_count"`
	Inventory     *StockInfo  `json:"inventory,omitempty"`
	CreatedAt     string      `json:"created_at"`
}

// Execute 执行详情查询
func (uc *GetGameUseCase) Execute(ctx context.Context, id uint) (*GameDetail, error) {
	g, err := uc.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, g.CategoryID)
	if err != nil {
		return nil, err
	}
	publisher, err := uc.publisherRepo.FindByID(ctx, g.PublisherID)
	if err != nil {
		return nil, err
	}
	authors, err := uc.authorRepo.FindByIDs(ctx, g.AuthorIDs)
	if err != nil {
		return nil, err
	}

	// 库存记录缺失不阻断详情展示（正常流程下创建游戏即建库存）
	inv, err := uc.inventoryRepo.FindByGameID(ctx, g.ID)
	if err != nil {
		if !errors.Is(err, inventory.ErrInventoryNotFound) {
			return nil, err
		}
		inv = nil
	}

	// 评分聚合只计入已审核评价
	reviews, err := uc.avisRepo.FindApprovedByGameID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	summary := avis.Summarize(reviews)

	return buildGameDetail(g, category, publisher, authors, inv, &summary), nil
}

// buildGameDetail 拼装详情DTO（create/get共用）
func buildGameDetail(
	g *game.Game,
	category *catalog.Category,
	publisher *catalog.Publisher,
	authors []*catalog.Author,
	inv *inventory.Inventory,
	summary *avis.Summary,
) *GameDetail {
	refs := make([]AuthorRef, len(authors))
	for i, a := range authors {
		refs[i] = AuthorRef{ID: a.ID, Name: a.Name}
	}

	detail := &GameDetail{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		PriceEuros:  formatPrice(g.Price),
		Edition:     g.Edition,
		AgeMin:      g.AgeMin,
		PlayersMin:  g.PlayersMin,
		PlayersMax:  g.PlayersMax,
		Duration:    g.Duration,
		Available:   g.Available,
		CategoryID:  g.CategoryID,
		Category:    category.Type,
		PublisherID: g.PublisherID,
		Publisher:   publisher.Name,
		Authors:     refs,
		CreatedAt:   g.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if inv != nil {
		detail.Inventory = &StockInfo{
			Stock:        inv.Stock,
			StockMinimum: inv.StockMinimum,
			Available:    inv.Available,
			LowStock:     inv.IsLowStock(),
		}
	}
	if summary != nil {
		detail.AverageRating = summary.AverageRating
		detail.ReviewCount = summary.ReviewCount
	}
	return detail
}

// formatPrice 格式化价格（分→欧元）
func formatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

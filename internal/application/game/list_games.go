package game

import (
	"context"

	"github.com/xiebiao/gamesup/internal/domain/game"
)

// ListGamesUseCase 游戏列表/搜索用例
// 设计说明：
// 1. 列表项不返回description字段（减少数据传输量）
// 2. 搜索采用两段式：关键词下推到SQL做LIKE预过滤，
//    其余条件（人数覆盖、价格区间等）在内存中收窄
type ListGamesUseCase struct {
	gameRepo game.Repository
}

// NewListGamesUseCase 创建列表用例
func NewListGamesUseCase(gameRepo game.Repository) *ListGamesUseCase {
	return &ListGamesUseCase{gameRepo: gameRepo}
}

// GameListItem 列表项DTO（不含description）
type GameListItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // 价格（分）
	PriceEuros  string `json:"price_euros"`
	Edition     int    `json:"edition"`
	AgeMin      int    `json:"age_min"`
	PlayersMin  int    `json:"players_min"`
	PlayersMax  int    `json:"players_max"`
	Duration    int    `json:"duration"`
	Available   bool   `json:"available"`
	CategoryID  uint   `json:"category_id"`
	PublisherID uint   `json:"publisher_id"`
}

// SearchGamesRequest 搜索请求DTO
// 指针字段为nil表示该维度不过滤
type SearchGamesRequest struct {
	Keyword     string
	CategoryID  *uint
	PublisherID *uint
	PriceMin    *int64
	PriceMax    *int64
	AgeMin      *int
	PlayersMin  *int
	PlayersMax  *int
	MaxDuration *int
	Available   *bool
}

// Execute 查询全部游戏
func (uc *ListGamesUseCase) Execute(ctx context.Context) ([]GameListItem, error) {
	games, err := uc.gameRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toGameListItems(games), nil
}

// ListByAuthorName 按作者名查询
func (uc *ListGamesUseCase) ListByAuthorName(ctx context.Context, name string) ([]GameListItem, error) {
	games, err := uc.gameRepo.FindByAuthorName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toGameListItems(games), nil
}

// Search 多条件搜索
func (uc *ListGamesUseCase) Search(ctx context.Context, req SearchGamesRequest) ([]GameListItem, error) {
	criteria := game.SearchCriteria{
		Keyword:     req.Keyword,
		CategoryID:  req.CategoryID,
		PublisherID: req.PublisherID,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		AgeMin:      req.AgeMin,
		PlayersMin:  req.PlayersMin,
		PlayersMax:  req.PlayersMax,
		MaxDuration: req.MaxDuration,
		Available:   req.Available,
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	// 关键词预过滤下推到SQL（空关键词返回全部）
	candidates, err := uc.gameRepo.SearchByKeyword(ctx, criteria.Keyword)
	if err != nil {
		return nil, err
	}

	// 其余条件在内存中收窄
	return toGameListItems(criteria.Filter(candidates)), nil
}

func toGameListItems(games []*game.Game) []GameListItem {
	list := make([]GameListItem, len(games))
	for i, g := range games {
		list[i] = GameListItem{
			ID:          g.ID,
			Name:        g.Name,
			Price:       g.Price,
			PriceEuros:  formatPrice(g.Price),
			Edition:     g.Edition,
			AgeMin:      g.AgeMin,
			PlayersMin:  g.PlayersMin,
			PlayersMax:  g.PlayersMax,
			Duration:    g.Duration,
			Available:   g.Available,
			CategoryID:  g.CategoryID,
			PublisherID: g.PublisherID,
		}
	}
	return list
}

package wishlist

import (
	"context"

	"github.com/xiebiao/gamesup/internal/domain/game"
	"github.com/xiebiao/gamesup/internal/domain/wishlist"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// WishlistUseCase 心愿单用例
// 设计说明：
// 1. 所有操作都以当前登录用户为边界：列表只返回自己的条目，
//    修改/删除做归属校验
// 2. 同一游戏重复收藏由数据库UNIQUE索引兜底，返回ErrDuplicateItem
type WishlistUseCase struct {
	wishlistRepo wishlist.Repository
	gameRepo     game.Repository
}

// NewWishlistUseCase 创建心愿单用例
func NewWishlistUseCase(wishlistRepo wishlist.Repository, gameRepo game.Repository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		gameRepo:     gameRepo,
	}
}

// ItemDTO 心愿单条目DTO（附带游戏快照字段，方便前端直接展示）
type ItemDTO struct {
	ID        uint   `json:"id"`
	GameID    uint   `json:"game_id"`
	GameName  string `json:"game_name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
	Priority  int    `json:"priority"`
	Note      string `json:"note"`
	AddedAt   string `json:"added_at"`
}

// Add 加入心愿单
func (uc *WishlistUseCase) Add(ctx context.Context, userID, gameID uint, priority int, note string) (*ItemDTO, error) {
	g, err := uc.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	item, err := wishlist.NewItem(userID, gameID, priority, note)
	if err != nil {
		return nil, err
	}
	if err := uc.wishlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	dto := toItemDTO(item, g)
	return &dto, nil
}

// List 查询心愿单（优先级倒序，同优先级按加入时间倒序）
func (uc *WishlistUseCase) List(ctx context.Context, userID uint) ([]ItemDTO, error) {
	items, err := uc.wishlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []ItemDTO{}, nil
	}

	// 批量查游戏快照，避免N+1
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.GameID
	}
	games, err := uc.gameRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	gameMap := make(map[uint]*game.Game, len(games))
	for _, g := range games {
		gameMap[g.ID] = g
	}

	list := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		// 已删除的游戏不再出现在心愿单里
		g, ok := gameMap[item.GameID]
		if !ok {
			continue
		}
		list = append(list, toItemDTO(item, g))
	}
	return list, nil
}

// Update 调整优先级/备注（归属校验）
func (uc *WishlistUseCase) Update(ctx context.Context, id uint, priority int, note string, requesterID uint) (*ItemDTO, error) {
	item, err := uc.wishlistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}

	if err := item.Update(priority, note); err != nil {
		return nil, err
	}
	if err := uc.wishlistRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	g, err := uc.gameRepo.FindByID(ctx, item.GameID)
	if err != nil {
		return nil, err
	}
	dto := toItemDTO(item, g)
	return &dto, nil
}

// Remove 移出心愿单（归属校验）
func (uc *WishlistUseCase) Remove(ctx context.Context, id, requesterID uint) error {
	item, err := uc.wishlistRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !item.IsOwnedBy(requesterID) {
		return apperrors.ErrForbidden
	}
	return uc.wishlistRepo.Delete(ctx, id)
}

// RemoveByGame 按游戏移出心愿单（前端从游戏详情页直接取消收藏）
func (uc *WishlistUseCase) RemoveByGame(ctx context.Context, userID, gameID uint) error {
	item, err := uc.wishlistRepo.FindByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return err
	}
	return uc.wishlistRepo.Delete(ctx, item.ID)
}

func toItemDTO(item *wishlist.Item, g *game.Game) ItemDTO {
	return ItemDTO{
		ID:        item.ID,
		GameID:    item.GameID,
		GameName:  g.Name,
		Price:     g.Price,
		Available: g.Available,
		Priority:  item.Priority,
		Note:      item.Note,
		AddedAt:   item.AddedAt.Format("2006-01-02 15:04:05"),
	}
}

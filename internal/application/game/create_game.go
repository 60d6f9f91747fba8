package game

import (
	"github.com/xiebiao/gamesup/internal/domain/catalog"
	"github.com/xiebiao/gamesup/internal/domain/game"
	"github.com/xiebiao/gamesup/internal/domain/inventory"

	"context"
)

// CreateGameUseCase 创建游戏用例
// 设计说明：
// 1. 创建前校验分类/出版商/作者都存在（跨聚合引用完整性
//    在应用层保证，领域实体只持有ID）
// 2. 创建游戏的同时自动创建库存记录（stock=0，等待管理员入库）
type CreateGameUseCase struct {
	gameRepo      game.Repository
	inventoryRepo inventory.Repository
	categoryRepo  catalog.CategoryRepository
	publisherRepo catalog.PublisherRepository
	authorRepo    catalog.AuthorRepository
}

// NewCreateGameUseCase 创建游戏用例
func NewCreateGameUseCase(
	gameRepo game.Repository,
	inventoryRepo inventory.Repository,
	categoryRepo catalog.CategoryRepository,
	publisherRepo catalog.PublisherRepository,
	authorRepo catalog.AuthorRepository,
) *CreateGameUseCase {
	return &CreateGameUseCase{
		gameRepo:      gameRepo,
		inventoryRepo: inventoryRepo,
		categoryRepo:  categoryRepo,
		publisherRepo: publisherRepo,
		authorRepo:    authorRepo,
	}
}

// CreateGameRequest 创建游戏请求DTO
type CreateGameRequest struct {
	Name        string
	Description string
	Price       int64 // 价格（分）
	Edition     int
	AgeMin      int
	PlayersMin  int
	PlayersMax  int
	Duration    int // 单局时长（分钟）
	CategoryID  uint
	PublisherID uint
	AuthorIDs   []uint
}

// Execute 执行创建游戏
func (uc *CreateGameUseCase) Execute(ctx context.Context, req CreateGameRequest) (*GameDetail, error) {
	// 1. 校验外部聚合引用存在
	category, err := uc.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	publisher, err := uc.publisherRepo.FindByID(ctx, req.PublisherID)
	if err != nil {
		return nil, err
	}
	authors, err := uc.authorRepo.FindByIDs(ctx, req.AuthorIDs)
	if err != nil {
		return nil, err
	}
	if len(authors) != len(req.AuthorIDs) {
		return nil, catalog.ErrAuthorNotFound
	}

	// 2. 创建游戏实体（缺省值和规则校验在工厂方法里）
	g, err := game.NewGame(
		req.Name, req.Description, req.Price,
		req.Edition, req.AgeMin, req.PlayersMin, req.PlayersMax, req.Duration,
		req.CategoryID, req.PublisherID, req.AuthorIDs,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.gameRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	// 3. 自动创建库存记录
	inv := inventory.NewInventory(g.ID)
	if err := uc.inventoryRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	return buildGameDetail(g, category, publisher, authors, inv, nil), nil
}

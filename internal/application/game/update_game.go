package game

import (
	"context"

	"github.com/xiebiao/gamesup/internal/domain/catalog"
	"github.com/xiebiao/gamesup/internal/domain/game"
)

// UpdateGameUseCase 更新/删除游戏用例（管理端）
type UpdateGameUseCase struct {
	gameRepo      game.Repository
	categoryRepo  catalog.CategoryRepository
	publisherRepo catalog.PublisherRepository
	authorRepo    catalog.AuthorRepository
}

// NewUpdateGameUseCase 创建更新用例
func NewUpdateGameUseCase(
	gameRepo game.Repository,
	categoryRepo catalog.CategoryRepository,
	publisherRepo catalog.PublisherRepository,
	authorRepo catalog.AuthorRepository,
) *UpdateGameUseCase {
	return &UpdateGameUseCase{
		gameRepo:      gameRepo,
		categoryRepo:  categoryRepo,
		publisherRepo: publisherRepo,
		authorRepo:    authorRepo,
	}
}

// UpdateGameRequest 更新游戏请求DTO
// 指针字段为nil表示不修改该字段
type UpdateGameRequest struct {
	Name        string
	Description string
	Price       *int64
	Edition     *int
	AgeMin      *int
	PlayersMin  *int
	PlayersMax  *int
	Duration    *int
	CategoryID  *uint
	PublisherID *uint
	AuthorIDs   []uint // nil表示不修改作者集合，空切片表示清空
	Available   *bool
}

// Execute 执行更新
// 实体的UpdateInfo按"先校验后提交"执行：任一规则不满足时整体不变更
func (uc *UpdateGameUseCase) Execute(ctx context.Context, id uint, req UpdateGameRequest) (*GameDetail, error) {
	g, err := uc.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 1. 变更外部聚合引用时先校验存在性
	if req.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		g.CategoryID = *req.CategoryID
	}
	if req.PublisherID != nil {
		if _, err := uc.publisherRepo.FindByID(ctx, *req.PublisherID); err != nil {
			return nil, err
		}
		g.PublisherID = *req.PublisherID
	}
	if req.AuthorIDs != nil {
		authors, err := uc.authorRepo.FindByIDs(ctx, req.AuthorIDs)
		if err != nil {
			return nil, err
		}
		if len(authors) != len(req.AuthorIDs) {
			return nil, catalog.ErrAuthorNotFound
		}
		g.SetAuthors(req.AuthorIDs)
	}

	// 2. 基本字段：nil用当前值补齐后交给实体统一校验
	price := g.Price
	if req.Price != nil {
		price = *req.Price
	}
	edition := valueOr(req.Edition, g.Edition)
	ageMin := valueOr(req.AgeMin, g.AgeMin)
	playersMin := valueOr(req.PlayersMin, g.PlayersMin)
	playersMax := valueOr(req.PlayersMax, g.PlayersMax)
	duration := valueOr(req.Duration, g.Duration)

	if err := g.UpdateInfo(req.Name, req.Description, price, edition, ageMin, playersMin, playersMax, duration); err != nil {
		return nil, err
	}

	if req.Available != nil {
		g.SetAvailability(*req.Available)
	}

	if err := uc.gameRepo.Update(ctx, g); err != nil {
		return nil, err
	}

	// 3. 重新拼装详情DTO
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

	return buildGameDetail(g, category, publisher, authors, nil, nil), nil
}

// Delete 删除游戏（级联删除库存记录）
func (uc *UpdateGameUseCase) Delete(ctx context.Context, id uint) error {
	return uc.gameRepo.Delete(ctx, id)
}

func valueOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

package avis

import (
	"context"

	"github.com/xiebiao/gamesup/internal/domain/avis"
	"github.com/xiebiao/gamesup/internal/domain/game"
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// AvisUseCase 游戏评价用例
// 设计说明：
// 1. 新建/修改后的评价都处于待审核状态，管理员审核通过后才计入评分
// 2. 公开列表只返回已审核评价；管理端列表返回全部（含待审核）
// 3. 修改/删除做归属校验：用户只操作自己的评价，管理员不受限
type AvisUseCase struct {
	avisRepo avis.Repository
	gameRepo game.Repository
}

// NewAvisUseCase 创建评价用例
func NewAvisUseCase(avisRepo avis.Repository, gameRepo game.Repository) *AvisUseCase {
	return &AvisUseCase{
		avisRepo: avisRepo,
		gameRepo: gameRepo,
	}
}

// AvisDTO 评价DTO
type AvisDTO struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	GameID    uint   `json:"game_id"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
	Approved  bool   `json:"approved"`
	CreatedAt string `json:"created_at"`
}

// SummaryDTO 游戏评分聚合DTO
// AverageRating为null表示尚无已审核评价
type SummaryDTO struct {
	GameID        uint     `json:"game_id"`
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
}

// Create 发表评价（初始为待审核状态）
func (uc *AvisUseCase) Create(ctx context.Context, userID, gameID uint, comment string, rating int) (*AvisDTO, error) {
	// 校验游戏存在
	if _, err := uc.gameRepo.FindByID(ctx, gameID); err != nil {
		return nil, err
	}

	a, err := avis.NewAvis(userID, gameID, comment, rating)
	if err != nil {
		return nil, err
	}
	if err := uc.avisRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	dto := toAvisDTO(a)
	return &dto, nil
}

// ListByGame 查询游戏的已审核评价（公开接口）
func (uc *AvisUseCase) ListByGame(ctx context.Context, gameID uint) ([]AvisDTO, error) {
	reviews, err := uc.avisRepo.FindApprovedByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return toAvisDTOs(reviews), nil
}

// ListByGameAll 查询游戏的全部评价（管理端，含待审核）
func (uc *AvisUseCase) ListByGameAll(ctx context.Context, gameID uint) ([]AvisDTO, error) {
	reviews, err := uc.avisRepo.FindByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return toAvisDTOs(reviews), nil
}

// ListByUser 查询用户发表的全部评价
func (uc *AvisUseCase) ListByUser(ctx context.Context, userID uint) ([]AvisDTO, error) {
	reviews, err := uc.avisRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAvisDTOs(reviews), nil
}

// ListAll 查询全部评价（管理端审核列表）
func (uc *AvisUseCase) ListAll(ctx context.Context) ([]AvisDTO, error) {
	reviews, err := uc.avisRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toAvisDTOs(reviews), nil
}

// Summary 查询游戏评分聚合（只计入已审核评价）
func (uc *AvisUseCase) Summary(ctx context.Context, gameID uint) (*SummaryDTO, error) {
	if _, err := uc.gameRepo.FindByID(ctx, gameID); err != nil {
		return nil, err
	}
	reviews, err := uc.avisRepo.FindApprovedByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	summary := avis.Summarize(reviews)
	return &SummaryDTO{
		GameID:        gameID,
		AverageRating: summary.AverageRating,
		ReviewCount:   summary.ReviewCount,
	}, nil
}

// Update 修改评价内容（重新进入待审核状态）
func (uc *AvisUseCase) Update(ctx context.Context, id uint, comment string, rating int, requesterID uint, isAdmin bool) (*AvisDTO, error) {
	a, err := uc.avisRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !a.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrForbidden
	}

	if err := a.Update(comment, rating); err != nil {
		return nil, err
	}
	if err := uc.avisRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	dto := toAvisDTO(a)
	return &dto, nil
}

// Approve 审核通过（管理端）
func (uc *AvisUseCase) Approve(ctx context.Context, id uint) (*AvisDTO, error) {
	a, err := uc.avisRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Approve()
	if err := uc.avisRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	dto := toAvisDTO(a)
	return &dto, nil
}

// Delete 删除评价（归属校验）
func (uc *AvisUseCase) Delete(ctx context.Context, id, requesterID uint, isAdmin bool) error {
	a, err := uc.avisRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && !a.IsOwnedBy(requesterID) {
		return apperrors.ErrForbidden
	}
	return uc.avisRepo.Delete(ctx, id)
}

func toAvisDTO(a *avis.Avis) AvisDTO {
	return AvisDTO{
		ID:        a.ID,
		UserID:    a.UserID,
		GameID:    a.GameID,
		Comment:   a.Comment,
		Rating:    a.Rating,
		Approved:  a.Approved,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toAvisDTOs(reviews []*avis.Avis) []AvisDTO {
	list := make([]AvisDTO, len(reviews))
	for i, a := range reviews {
		list[i] = toAvisDTO(a)
	}
	return list
}

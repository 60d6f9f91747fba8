package recommendation

import (
	"context"
	"fmt"
	"time"

	"github.com/xiebiao/gamesup/internal/domain/game"
	"github.com/xiebiao/gamesup/internal/domain/recommendation"
	"github.com/xiebiao/gamesup/pkg/metrics"
)

// fallbackLimit 降级推荐的游戏数量
const fallbackLimit = 10

// RecommendUseCase 推荐用例
// 设计说明：
// 1. 推荐服务是外部Python服务，单次调用、不重试、不熔断；
//    任何失败（超时、非2xx、空结果）都降级为"热门游戏"静态推荐
// 2. 降级策略集中在这一层：Gateway只负责透传，Handler只负责展示，
//    推荐接口对前端永远返回200和一个可用列表
// 3. 管理类操作（更新模型/训练/健康检查）返回描述性文本，
//    远端不可达时返回状态说明而不是错误
type RecommendUseCase struct {
	gateway  recommendation.Gateway
	gameRepo game.Repository
}

// NewRecommendUseCase 创建推荐用例
func NewRecommendUseCase(gateway recommendation.Gateway, gameRepo game.Repository) *RecommendUseCase {
	return &RecommendUseCase{
		gateway:  gateway,
		gameRepo: gameRepo,
	}
}

// RecommendedGame 推荐结果项DTO
type RecommendedGame struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	PriceEuros string `json:"price_euros"`
	Available  bool   `json:"available"`
}

// RecommendResponse 推荐响应DTO
// Fallback=true表示本次结果来自静态降级而非推荐模型
type RecommendResponse struct {
	Games    []RecommendedGame `json:"games"`
	Fallback bool              `json:"fallback"`
}

// StatusResponse 推荐服务管理操作的响应DTO
type StatusResponse struct {
	Status string `json:"status"`
}

// ForUser 按用户获取推荐
func (uc *RecommendUseCase) ForUser(ctx context.Context, userID uint) (*RecommendResponse, error) {
	return uc.recommend(ctx, func(ctx context.Context) ([]uint, error) {
		return uc.gateway.RecommendForUser(ctx, userID)
	})
}

// ForGame 按游戏获取相似推荐
func (uc *RecommendUseCase) ForGame(ctx context.Context, gameID uint) (*RecommendResponse, error) {
	// 校验游戏存在（对不存在的游戏返回404而不是降级列表）
	if _, err := uc.gameRepo.FindByID(ctx, gameID); err != nil {
		return nil, err
	}
	return uc.recommend(ctx, func(ctx context.Context) ([]uint, error) {
		return uc.gateway.RecommendForGame(ctx, gameID)
	})
}

// recommend 推荐的公共流程：调用网关 → 解析ID → 失败降级
func (uc *RecommendUseCase) recommend(ctx context.Context, fetch func(ctx context.Context) ([]uint, error)) (*RecommendResponse, error) {
	start := time.Now()

	ids, err := fetch(ctx)
	metrics.ObserveHistogram(metrics.RecommendationDuration, time.Since(start).Seconds())

	if err == nil {
		// 推荐ID → 游戏列表（保持推荐顺序；已删除的ID被自然过滤）
		games, gerr := uc.gameRepo.FindByIDs(ctx, ids)
		if gerr == nil && len(games) > 0 {
			metrics.IncCounterVec(metrics.RecommendationRequestsTotal, map[string]string{"result": "success"})
			return &RecommendResponse{Games: toRecommendedGames(games), Fallback: false}, nil
		}
	}

	// 降级：按存储顺序取前N个游戏作为静态推荐
	metrics.IncCounterVec(metrics.RecommendationRequestsTotal, map[string]string{"result": "fallback"})
	games, err := uc.gameRepo.FindFirst(ctx, fallbackLimit)
	if err != nil {
		return nil, err
	}
	return &RecommendResponse{Games: toRecommendedGames(games), Fallback: true}, nil
}

// UpdateModel 通知推荐服务增量更新模型（管理端）
func (uc *RecommendUseCase) UpdateModel(ctx context.Context) *StatusResponse {
	text, err := uc.gateway.UpdateModel(ctx)
	if err != nil {
		return &StatusResponse{Status: "推荐服务不可用: " + err.Error()}
	}
	return &StatusResponse{Status: text}
}

// Train 触发推荐服务全量训练（管理端）
func (uc *RecommendUseCase) Train(ctx context.Context) *StatusResponse {
	text, err := uc.gateway.Train(ctx)
	if err != nil {
		return &StatusResponse{Status: "推荐服务不可用: " + err.Error()}
	}
	return &StatusResponse{Status: text}
}

// Health 查询推荐服务健康状态
func (uc *RecommendUseCase) Health(ctx context.Context) *StatusResponse {
	text, err := uc.gateway.Health(ctx)
	if err != nil {
		return &StatusResponse{Status: "推荐服务不可用: " + err.Error()}
	}
	return &StatusResponse{Status: text}
}

func toRecommendedGames(games []*game.Game) []RecommendedGame {
	list := make([]RecommendedGame, len(games))
	for i, g := range games {
		list[i] = RecommendedGame{
			ID:         g.ID,
			Name:       g.Name,
			Price:      g.Price,
			PriceEuros: fmt.Sprintf("%.2f", float64(g.Price)/100.0),
			Available:  g.Available,
		}
	}
	return list
}

package recommendation

import (
	"context"
	"errors"
	"testing"

	"github.com/xiebiao/gamesup/internal/domain/game"
	"github.com/xiebiao/gamesup/pkg/metrics"
)

// =========================================
// 内存版Fake
// =========================================

type fakeGateway struct {
	ids []uint
	err error
}

func (g *fakeGateway) RecommendForUser(ctx context.Context, userID uint) ([]uint, error) {
	return g.ids, g.err
}
func (g *fakeGateway) RecommendForGame(ctx context.Context, gameID uint) ([]uint, error) {
	return g.ids, g.err
}
func (g *fakeGateway) UpdateModel(ctx context.Context) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return "model updated", nil
}
func (g *fakeGateway) Train(ctx context.Context) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return "training started", nil
}
func (g *fakeGateway) Health(ctx context.Context) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return "ok", nil
}

type fakeGameRepo struct {
	games []*game.Game
}

func (r *fakeGameRepo) Create(ctx context.Context, g *game.Game) error { return nil }
func (r *fakeGameRepo) FindByID(ctx context.Context, id uint) (*game.Game, error) {
	for _, g := range r.games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, game.ErrGameNotFound
}

// FindByIDs 保持入参顺序（和MySQL实现语义一致）
func (r *fakeGameRepo) FindByIDs(ctx context.Context, ids []uint) ([]*game.Game, error) {
	var result []*game.Game
	for _, id := range ids {
		for _, g := range r.games {
			if g.ID == id {
				result = append(result, g)
			}
		}
	}
	return result, nil
}
func (r *fakeGameRepo) FindAll(ctx context.Context) ([]*game.Game, error) { return r.games, nil }
func (r *fakeGameRepo) FindFirst(ctx context.Context, limit int) ([]*game.Game, error) {
	if limit > len(r.games) {
		limit = len(r.games)
	}
	return r.games[:limit], nil
}
func (r *fakeGameRepo) SearchByKeyword(ctx context.Context, keyword string) ([]*game.Game, error) {
	return r.games, nil
}
func (r *fakeGameRepo) FindByAuthorName(ctx context.Context, name string) ([]*game.Game, error) {
	return nil, nil
}
func (r *fakeGameRepo) Update(ctx context.Context, g *game.Game) error { return nil }
func (r *fakeGameRepo) Delete(ctx context.Context, id uint) error      { return nil }

func testGames() []*game.Game {
	return []*game.Game{
		{ID: 1, Name: "Catan", Price: 4500, Available: true},
		{ID: 2, Name: "Azul", Price: 3500, Available: true},
		{ID: 3, Name: "7 Wonders", Price: 4200, Available: true},
	}
}

// TestRecommendSuccess 测试推荐服务正常时保持模型返回的顺序
func TestRecommendSuccess(t *testing.T) {
	metrics.InitMetrics()

	uc := NewRecommendUseCase(
		&fakeGateway{ids: []uint{3, 1}},
		&fakeGameRepo{games: testGames()},
	)

	resp, err := uc.ForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("推荐失败: %v", err)
	}
	if resp.Fallback {
		t.Error("正常路径不应标记为降级")
	}
	if len(resp.Games) != 2 || resp.Games[0].ID != 3 || resp.Games[1].ID != 1 {
		t.Errorf("推荐顺序错误: %+v", resp.Games)
	}

	t.Log("✅ 推荐正常路径测试通过")
}

// TestRecommendFallback 测试推荐服务失败时降级为静态推荐
func TestRecommendFallback(t *testing.T) {
	metrics.InitMetrics()

	tests := []struct {
		name    string
		gateway *fakeGateway
	}{
		{"服务报错", &fakeGateway{err: errors.New("connection refused")}},
		{"空结果", &fakeGateway{ids: nil}},
		{"全部ID已删除", &fakeGateway{ids: []uint{998, 999}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRecommendUseCase(tt.gateway, &fakeGameRepo{games: testGames()})

			resp, err := uc.ForUser(context.Background(), 7)
			if err != nil {
				t.Fatalf("降级路径不应返回错误: %v", err)
			}
			if !resp.Fallback {
				t.Error("应标记为降级结果")
			}
			// 降级为按存储顺序的前N个游戏
			if len(resp.Games) != 3 || resp.Games[0].ID != 1 {
				t.Errorf("降级列表错误: %+v", resp.Games)
			}
		})
	}

	t.Log("✅ 推荐降级测试通过")
}

// TestRecommendForGameNotFound 测试按不存在的游戏推荐返回404而非降级
func TestRecommendForGameNotFound(t *testing.T) {
	metrics.InitMetrics()

	uc := NewRecommendUseCase(
		&fakeGateway{ids: []uint{1}},
		&fakeGameRepo{games: testGames()},
	)

	if _, err := uc.ForGame(context.Background(), 999); !errors.Is(err, game.ErrGameNotFound) {
		t.Errorf("应返回游戏不存在错误, got: %v", err)
	}

	t.Log("✅ 游戏不存在测试通过")
}

// TestStatusOperations 测试管理操作在远端不可用时返回状态说明而非错误
func TestStatusOperations(t *testing.T) {
	metrics.InitMetrics()
	ctx := context.Background()

	// 远端正常
	uc := NewRecommendUseCase(&fakeGateway{}, &fakeGameRepo{games: testGames()})
	if got := uc.UpdateModel(ctx).Status; got != "model updated" {
		t.Errorf("UpdateModel状态错误: %s", got)
	}
	if got := uc.Train(ctx).Status; got != "training started" {
		t.Errorf("Train状态错误: %s", got)
	}
	if got := uc.Health(ctx).Status; got != "ok" {
		t.Errorf("Health状态错误: %s", got)
	}

	// 远端不可用：返回状态说明，永不返回error
	down := NewRecommendUseCase(&fakeGateway{err: errors.New("timeout")}, &fakeGameRepo{games: testGames()})
	if got := down.Health(ctx).Status; got == "" || got == "ok" {
		t.Errorf("不可用时应返回状态说明: %q", got)
	}

	t.Log("✅ 管理操作测试通过")
}

package recommendation

import (
	"context"
)

// Gateway 外部推荐服务网关接口
// 设计说明：
// 1. 接口定义在domain层，HTTP实现在infrastructure/recommender
// 2. 失败即返回error，不重试不熔断；降级策略（热门游戏列表）
//    由application层统一处理，网关本身不做降级
// 3. UpdateModel/Train/Health返回远端的描述性文本，远端不可达时
//    由application层转换为状态字符串而非错误
type Gateway interface {
	// RecommendForUser 按用户获取推荐游戏ID列表
	RecommendForUser(ctx context.Context, userID uint) ([]uint, error)

	// RecommendForGame 按游戏获取相似游戏ID列表
	RecommendForGame(ctx context.Context, gameID uint) ([]uint, error)

	// UpdateModel 通知远端增量更新推荐模型
	UpdateModel(ctx context.Context) (string, error)

	// Train 触发远端全量训练
	Train(ctx context.Context) (string, error)

	// Health 查询远端健康状态
	Health(ctx context.Context) (string, error)
}

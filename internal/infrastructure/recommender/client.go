// Package recommender 外部推荐服务的HTTP客户端实现
//
// 远端是一个独立部署的推荐服务，约定：
//   - GET  {base}/recommendations/user/{id} → [1, 5, 9]（游戏ID列表）
//   - GET  {base}/recommendations/game/{id} → [2, 3]
//   - POST {base}/update-model → 状态文本
//   - POST {base}/train → 状态文本
//   - GET  {base}/health → 状态文本
//
// 设计说明：单次请求单次尝试，不重试不熔断；超时由配置控制（缺省3s）。
// 失败的降级（热门游戏列表）在application层处理。
package recommender

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xiebiao/gamesup/internal/domain/recommendation"
)

// Client 推荐服务HTTP客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ recommendation.Gateway = (*Client)(nil)

// NewClient 创建推荐服务客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// RecommendForUser 按用户获取推荐游戏ID列表
func (c *Client) RecommendForUser(ctx context.Context, userID uint) ([]uint, error) {
	return c.fetchIDs(ctx, fmt.Sprintf("%s/recommendations/user/%d", c.baseURL, userID))
}

// RecommendForGame 按游戏获取相似游戏ID列表
func (c *Client) RecommendForGame(ctx context.Context, gameID uint) ([]uint, error) {
	return c.fetchIDs(ctx, fmt.Sprintf("%s/recommendations/game/%d", c.baseURL, gameID))
}

// UpdateModel 通知远端增量更新推荐模型
func (c *Client) UpdateModel(ctx context.Context) (string, error) {
	return c.fetchText(ctx, http.MethodPost, c.baseURL+"/update-model")
}

// Train 触发远端全量训练
func (c *Client) Train(ctx context.Context) (string, error) {
	return c.fetchText(ctx, http.MethodPost, c.baseURL+"/train")
}

// Health 查询远端健康状态
func (c *Client) Health(ctx context.Context) (string, error) {
	return c.fetchText(ctx, http.MethodGet, c.baseURL+"/health")
}

// fetchIDs 请求并解析游戏ID列表
// 非2xx状态码和空响应体都视为失败（由调用方走降级路径）
func (c *Client) fetchIDs(ctx context.Context, url string) ([]uint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("构建推荐请求失败: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("推荐服务请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("推荐服务返回异常状态: %d", resp.StatusCode)
	}

	var ids []uint
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("解析推荐结果失败: %w", err)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("推荐结果为空")
	}

	return ids, nil
}

// fetchText 请求并返回远端的状态文本
func (c *Client) fetchText(ctx context.Context, method, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return "", fmt.Errorf("构建请求失败: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("推荐服务请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("推荐服务返回异常状态: %d", resp.StatusCode)
	}

	return strings.TrimSpace(string(body)), nil
}

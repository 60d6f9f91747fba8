package handler

import (
	"github.com/gin-gonic/gin"

	apprecommendation "github.com/xiebiao/gamesup/internal/application/recommendation"
	"github.com/xiebiao/gamesup/pkg/response"
)

// RecommendationHandler 推荐HTTP处理器
//
// 设计说明: 推荐接口永远返回200——推荐服务不可用时降级为热门游戏列表，
// 由响应中的fallback字段告知前端。状态类接口（update-model/train/health）
// 把下游错误包进status文本，同样不向客户端暴露5xx。
type RecommendationHandler struct {
	useCase *apprecommendation.RecommendUseCase
}

// NewRecommendationHandler 创建推荐处理器
func NewRecommendationHandler(useCase *apprecommendation.RecommendUseCase) *RecommendationHandler {
	return &RecommendationHandler{useCase: useCase}
}

// ForUser 用户个性化推荐
// @Summary      用户推荐
// @Description  推荐服务不可用时返回降级列表，fallback=true
// @Tags         推荐
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} apprecommendation.RecommendResponse
// @Router       /api/recommendations/user/{id} [get]
func (h *RecommendationHandler) ForUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.ForUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ForGame 相似游戏推荐
// @Summary      相似游戏推荐
// @Tags         推荐
// @Produce      json
// @Param        id path int true "游戏ID"
// @Success      200 {object} apprecommendation.RecommendResponse
// @Failure      404 {object} response.ErrorResponse "游戏不存在"
// @Router       /api/recommendations/game/{id} [get]
func (h *RecommendationHandler) ForGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.ForGame(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateModel 触发推荐模型更新
// @Summary      更新推荐模型
// @Tags         推荐
// @Produce      json
// @Success      200 {object} apprecommendation.StatusResponse
// @Router       /api/recommendations/update-model [post]
func (h *RecommendationHandler) UpdateModel(c *gin.Context) {
	response.Success(c, h.useCase.UpdateModel(c.Request.Context()))
}

// Train 触发推荐模型训练
// @Summary      训练推荐模型
// @Tags         推荐
// @Produce      json
// @Success      200 {object} apprecommendation.StatusResponse
// @Router       /api/recommendations/train [post]
func (h *RecommendationHandler) Train(c *gin.Context) {
	response.Success(c, h.useCase.Train(c.Request.Context()))
}

// Health 推荐服务健康检查
// @Summary      推荐服务健康检查
// @Tags         推荐
// @Produce      json
// @Success      200 {object} apprecommendation.StatusResponse
// @Router       /api/recommendations/health [get]
func (h *RecommendationHandler) Health(c *gin.Context) {
	response.Success(c, h.useCase.Health(c.Request.Context()))
}

package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	apppurchase "github.com/xiebiao/gamesup/internal/application/purchase"
	"github.com/xiebiao/gamesup/internal/interface/http/dto"
	"github.com/xiebiao/gamesup/internal/interface/http/middleware"
	"github.com/xiebiao/gamesup/pkg/response"
)

// PurchaseHandler 订单HTTP处理器
// 所有接口都需要登录；归属校验在应用层（管理员不受限）
type PurchaseHandler struct {
	createUseCase *apppurchase.CreatePurchaseUseCase
	manageUseCase *apppurchase.ManagePurchaseUseCase
}

// NewPurchaseHandler 创建订单处理器
func NewPurchaseHandler(
	createUseCase *apppurchase.CreatePurchaseUseCase,
	manageUseCase *apppurchase.ManagePurchaseUseCase,
) *PurchaseHandler {
	return &PurchaseHandler{
		createUseCase: createUseCase,
		manageUseCase: manageUseCase,
	}
}

// Create 下单
// @Summary      下单
// @Description  锁定并扣减每行库存，按当前价格快照计价，全部成功才创建订单
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePurchaseRequest true "订单明细"
// @Success      201 {object} apppurchase.PurchaseDTO
// @Failure      400 {object} response.ErrorResponse "库存不足或明细非法"
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	lines := make([]apppurchase.CreatePurchaseLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = apppurchase.CreatePurchaseLine{
			GameID:        l.GameID,
			Quantity:      l.Quantity,
			DiscountPrice: l.DiscountPrice,
		}
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), apppurchase.CreatePurchaseRequest{
		UserID: middleware.GetUserID(c),
		Lines:  lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get 订单详情
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Failure      403 {object} response.ErrorResponse "非本人订单"
// @Failure      404 {object} response.ErrorResponse "订单不存在"
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.manageUseCase.Get(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 我的订单列表（分页）
// @Summary      我的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码（从1开始）"
// @Param        page_size query int false "每页数量（默认20，最大100）"
// @Success      200 {object} apppurchase.PurchasePage
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.manageUseCase.ListByUser(c.Request.Context(), middleware.GetUserID(c), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListAll 全部订单（管理端）
// @Summary      全部订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} apppurchase.PurchaseDTO
// @Failure      403 {object} response.ErrorResponse "非管理员"
// @Router       /api/purchases/all [get]
func (h *PurchaseHandler) ListAll(c *gin.Context) {
	result, err := h.manageUseCase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListByUser 指定用户的订单（管理端）
// @Summary      用户订单列表
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "用户ID"
// @Param        page query int false "页码（默认1）"
// @Param        page_size query int false "每页数量（默认20，最大100）"
// @Success      200 {object} apppurchase.PurchasePage
// @Failure      403 {object} response.ErrorResponse "非管理员"
// @Router       /api/purchases/user/{userId} [get]
func (h *PurchaseHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.manageUseCase.ListByUser(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Confirm 确认订单（管理端）
// @Summary      确认订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Failure      400 {object} response.ErrorResponse "状态不允许"
// @Router       /api/purchases/{id}/confirm [post]
func (h *PurchaseHandler) Confirm(c *gin.Context) {
	h.statusOp(c, h.manageUseCase.Confirm)
}

// Ship 发货（管理端）
// @Summary      发货
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Router       /api/purchases/{id}/ship [post]
func (h *PurchaseHandler) Ship(c *gin.Context) {
	h.statusOp(c, h.manageUseCase.Ship)
}

// Deliver 送达（管理端）
// @Summary      送达
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Router       /api/purchases/{id}/deliver [post]
func (h *PurchaseHandler) Deliver(c *gin.Context) {
	h.statusOp(c, h.manageUseCase.Deliver)
}

// MarkPaid 标记已支付（管理端）
// @Summary      标记已支付
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Router       /api/purchases/{id}/pay [post]
func (h *PurchaseHandler) MarkPaid(c *gin.Context) {
	h.statusOp(c, h.manageUseCase.MarkPaid)
}

// Archive 归档订单（管理端）
// @Summary      归档订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Router       /api/purchases/{id}/archive [post]
func (h *PurchaseHandler) Archive(c *gin.Context) {
	h.statusOp(c, h.manageUseCase.Archive)
}

// Cancel 取消订单并回补库存
// @Summary      取消订单
// @Description  只有PENDING/CONFIRMED可以取消；回补全部明细的库存
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Failure      400 {object} response.ErrorResponse "状态不允许"
// @Failure      403 {object} response.ErrorResponse "非本人订单"
// @Router       /api/purchases/{id}/cancel [post]
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.manageUseCase.Cancel(c.Request.Context(), id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateLine 修改明细行
// @Summary      修改明细行
// @Description  仅PENDING订单；数量差额同步调整库存
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        lineId path int true "明细行ID"
// @Param        request body dto.UpdateLineRequest true "明细内容"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Router       /api/purchases/{id}/lines/{lineId} [put]
func (h *PurchaseHandler) UpdateLine(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	var req dto.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.manageUseCase.UpdateLine(c.Request.Context(), id, lineID, req.Quantity, req.DiscountPrice,
		middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveLine 移除明细行
// @Summary      移除明细行
// @Description  仅PENDING订单；回补库存；最后一行不允许移除（应取消订单）
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        lineId path int true "明细行ID"
// @Success      200 {object} apppurchase.PurchaseDTO
// @Router       /api/purchases/{id}/lines/{lineId} [delete]
func (h *PurchaseHandler) RemoveLine(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseIDParam(c, "lineId")
	if !ok {
		return
	}

	result, err := h.manageUseCase.RemoveLine(c.Request.Context(), id, lineID,
		middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除订单（管理端）
// @Summary      删除订单
// @Tags         订单
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      204 "删除成功"
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.manageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// statusOp 状态操作的公共流程
func (h *PurchaseHandler) statusOp(c *gin.Context, fn func(ctx context.Context, id uint) (*apppurchase.PurchaseDTO, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

package purchase

import (
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrPurchaseNotFound 订单不存在
	ErrPurchaseNotFound = apperrors.New(apperrors.ErrCodePurchaseNotFound, "订单不存在")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidStatus, "订单状态不允许此操作")

	// ErrEmptyLines 订单明细不能为空
	ErrEmptyLines = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrLineNotFound 订单明细不存在
	ErrLineNotFound = apperrors.New(apperrors.ErrCodeNotFound, "订单明细不存在")
)

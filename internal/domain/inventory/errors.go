package inventory

import (
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 库存领域错误定义
var (
	// ErrInventoryNotFound 库存记录不存在
	ErrInventoryNotFound = apperrors.New(apperrors.ErrCodeInventoryNotFound, "库存记录不存在")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")

	// ErrInvalidStockMinimum 无效的安全库存阈值
	ErrInvalidStockMinimum = apperrors.New(apperrors.ErrCodeInvalidParams, "安全库存阈值不能为负数")
)

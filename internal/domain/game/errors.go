package game

import (
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 游戏领域错误定义
var (
	// ErrGameNotFound 游戏不存在
	ErrGameNotFound = apperrors.New(apperrors.ErrCodeGameNotFound, "游戏不存在")

	// ErrInvalidName 游戏名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "游戏名不能为空")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")

	// ErrInvalidAge 无效的适龄下限
	ErrInvalidAge = apperrors.New(apperrors.ErrCodeInvalidParams, "适龄下限不能为负数")

	// ErrInvalidPlayerRange 人数区间非法
	ErrInvalidPlayerRange = apperrors.New(apperrors.ErrCodeInvalidParams, "最少人数不能大于最多人数")
)

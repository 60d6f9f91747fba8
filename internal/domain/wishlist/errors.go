package wishlist

import (
	apperrors "github.com/xiebiao/gamesup/pkg/errors"
)

// 心愿单领域错误定义
var (
	// ErrItemNotFound 心愿单条目不存在
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeWishlistNotFound, "心愿单条目不存在")

	// ErrDuplicateItem 游戏已在心愿单中
	ErrDuplicateItem = apperrors.New(apperrors.ErrCodeDuplicateEntry, "该游戏已在心愿单中")

	// ErrInvalidPriority 优先级超出范围
	ErrInvalidPriority = apperrors.New(apperrors.ErrCodeInvalidParams, "优先级必须在1到5之间")
)

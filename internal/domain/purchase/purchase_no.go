package purchase

import (
	"fmt"
	"math/rand"
	"time"
)

// GeneratePurchaseNo 生成订单号
// 订单号设计原则：
// 1. 全局唯一（避免冲突）
// 2. 时间有序（便于分库分表）
// 3. 不可预测（防止恶意遍历）
//
// 格式：PUR + 时间戳（秒）+ 6位随机数
// 示例：PUR1699248000123456
func GeneratePurchaseNo() string {
	timestamp := time.Now().Unix()
	random := rand.Intn(1000000) // 6位随机数
	return fmt.Sprintf("PUR%d%06d", timestamp, random)
}

package avis

// Summary 游戏评分聚合结果
// AverageRating为nil表示该游戏没有任何已审核评价（区别于平均分0）
type Summary struct {
	AverageRating *float64
	ReviewCount   int
}

// Summarize 对已审核评价做评分聚合
// 设计说明：
// 1. 只统计Approved=true的评价（入参应已由仓储过滤，这里再次防御）
// 2. 无已审核评价时平均分为nil，调用方序列化为null
func Summarize(reviews []*Avis) Summary {
	var sum, count int
	for _, a := range reviews {
		if !a.Approved {
			continue
		}
		sum += a.Rating
		count++
	}

	if count == 0 {
		return Summary{ReviewCount: 0}
	}

	avg := float64(sum) / float64(count)
	return Summary{AverageRating: &avg, ReviewCount: count}
}

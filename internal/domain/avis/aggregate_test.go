package avis

import (
	"testing"
)

// TestSummarize 测试评分聚合
func TestSummarize(t *testing.T) {
	reviews := []*Avis{
		{Rating: 5, Approved: true},
		{Rating: 4, Approved: true},
		{Rating: 3, Approved: true},
	}

	s := Summarize(reviews)
	if s.ReviewCount != 3 {
		t.Errorf("评价数错误: expected=3, got=%d", s.ReviewCount)
	}
	if s.AverageRating == nil || *s.AverageRating != 4.0 {
		t.Errorf("平均分错误: expected=4.0, got=%v", s.AverageRating)
	}

	t.Log("✅ 评分聚合测试通过")
}

// TestSummarizeExcludesUnapproved 测试未审核评价不计入聚合
func TestSummarizeExcludesUnapproved(t *testing.T) {
	reviews := []*Avis{
		{Rating: 5, Approved: true},
		{Rating: 1, Approved: false}, // 未审核，不计入
	}

	s := Summarize(reviews)
	if s.ReviewCount != 1 {
		t.Errorf("评价数错误: expected=1, got=%d", s.ReviewCount)
	}
	if s.AverageRating == nil || *s.AverageRating != 5.0 {
		t.Errorf("平均分错误: expected=5.0, got=%v", s.AverageRating)
	}
}

// TestSummarizeEmpty 测试无已审核评价时平均分为nil
func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.ReviewCount != 0 {
		t.Errorf("评价数错误: expected=0, got=%d", s.ReviewCount)
	}
	if s.AverageRating != nil {
		t.Errorf("无评价时平均分应为nil, got=%v", *s.AverageRating)
	}

	// 全部未审核同样为nil
	s = Summarize([]*Avis{{Rating: 4, Approved: false}})
	if s.AverageRating != nil {
		t.Errorf("全部未审核时平均分应为nil, got=%v", *s.AverageRating)
	}
}

// TestNewAvisValidation 测试评分范围校验
func TestNewAvisValidation(t *testing.T) {
	for _, rating := range []int{0, -1, 6} {
		if _, err := NewAvis(1, 1, "bon jeu", rating); err != ErrInvalidRating {
			t.Errorf("评分%d应返回ErrInvalidRating, got=%v", rating, err)
		}
	}

	a, err := NewAvis(1, 1, "bon jeu", 5)
	if err != nil {
		t.Fatalf("创建评价失败: %v", err)
	}
	if a.Approved {
		t.Error("新建评价应为未审核状态")
	}

	// 修改内容后重新进入待审核
	a.Approve()
	if !a.Approved {
		t.Error("审核通过后Approved应为true")
	}
	if err := a.Update("finalement moyen", 3); err != nil {
		t.Fatalf("更新评价失败: %v", err)
	}
	if a.Approved {
		t.Error("更新内容后应重新进入待审核状态")
	}
}

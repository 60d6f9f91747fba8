package recommender

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestRecommendForUser 测试按用户获取推荐
func TestRecommendForUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommendations/user/42" {
			t.Errorf("请求路径错误: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[3, 1, 7]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 3*time.Second)
	ids, err := client.RecommendForUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("获取推荐失败: %v", err)
	}

	// 推荐结果的次序有意义（按评分排序）
	expected := []uint{3, 1, 7}
	if len(ids) != len(expected) {
		t.Fatalf("推荐数量错误: expected=%d, got=%d", len(expected), len(ids))
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("推荐顺序错误: index=%d, expected=%d, got=%d", i, expected[i], ids[i])
		}
	}

	t.Log("✅ 按用户推荐测试通过")
}

// TestRecommendErrorPaths 测试失败路径（调用方据此走降级）
func TestRecommendErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"非2xx状态码",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			"空列表",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
		},
		{
			"非法JSON",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 3*time.Second)
			if _, err := client.RecommendForGame(context.Background(), 1); err == nil {
				t.Error("应返回错误")
			}
		})
	}

	// 服务不可达
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	if _, err := client.RecommendForUser(context.Background(), 1); err == nil {
		t.Error("服务不可达应返回错误")
	}
}

// TestStatusEndpoints 测试状态类端点返回远端文本
func TestStatusEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/update-model" && r.Method == http.MethodPost:
			w.Write([]byte("model updated\n"))
		case r.URL.Path == "/train" && r.Method == http.MethodPost:
			w.Write([]byte("training started"))
		case r.URL.Path == "/health" && r.Method == http.MethodGet:
			w.Write([]byte("ok"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, 3*time.Second)
	ctx := context.Background()

	if text, err := client.UpdateModel(ctx); err != nil || text != "model updated" {
		t.Errorf("UpdateModel错误: text=%q, err=%v", text, err)
	}
	if text, err := client.Train(ctx); err != nil || text != "training started" {
		t.Errorf("Train错误: text=%q, err=%v", text, err)
	}
	if text, err := client.Health(ctx); err != nil || text != "ok" {
		t.Errorf("Health错误: text=%q, err=%v", text, err)
	}

	t.Log("✅ 状态端点测试通过")
}

// TestTimeout 测试超时控制
func TestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[1]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond)
	if _, err := client.RecommendForUser(context.Background(), 1); err == nil {
		t.Error("超时应返回错误")
	}

	t.Log("✅ 超时控制测试通过")
}

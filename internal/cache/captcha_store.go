package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CaptchaStore 基于 Redis 的验证码存储，多实例部署时共享挑战
// 实现 base64Captcha.Store 接口
type CaptchaStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCaptchaStore 创建验证码存储，未启用 Redis 时返回 nil
func NewCaptchaStore(ttl time.Duration) *CaptchaStore {
	client := Client()
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CaptchaStore{client: client, ttl: ttl}
}

func captchaKey(id string) string {
	return buildKey("captcha:" + strings.TrimSpace(id))
}

// Set 保存验证码答案
func (s *CaptchaStore) Set(id string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Set(ctx, captchaKey(id), value, s.ttl).Err()
}

// Get 读取验证码答案，clear 为 true 时读取后删除
func (s *CaptchaStore) Get(id string, clear bool) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	key := captchaKey(id)
	var (
		value string
		err   error
	)
	if clear {
		value, err = s.client.GetDel(ctx, key).Result()
	} else {
		value, err = s.client.Get(ctx, key).Result()
	}
	if err != nil {
		return ""
	}
	return value
}

// Verify 校验验证码（忽略大小写）
func (s *CaptchaStore) Verify(id, answer string, clear bool) bool {
	stored := s.Get(id, clear)
	if stored == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(answer))
}

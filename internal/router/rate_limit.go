package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/i18n"
	"github.com/fresh-groceries/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int // 超限后的锁定时长，0 表示等窗口自然过期
	MessageKey    string
}

// KEYS[1] 计数 key，KEYS[2] 锁定 key；返回 {计数, 剩余秒数}，计数为 -1 表示处于锁定期
var rateLimitScript = redis.NewScript(`
local blocked = redis.call("TTL", KEYS[2])
if blocked > 0 then
	return {-1, blocked}
end
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local block = tonumber(ARGV[3])
if current > tonumber(ARGV[2]) and block > 0 then
	redis.call("SET", KEYS[2], "1", "EX", block)
	return {current, block}
end
return {current, redis.call("TTL", KEYS[1])}
`)

func (r RateLimitRule) enabled() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

func (r RateLimitRule) counterKey(key string) string {
	if r.Prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", r.Prefix, key)
}

func (r RateLimitRule) blockKey(key string) string {
	if r.Prefix == "" {
		return "block:" + key
	}
	return fmt.Sprintf("%s:block:%s", r.Prefix, key)
}

// check 计数并判断是否超限，超限时返回需等待的秒数
func (r RateLimitRule) check(ctx context.Context, client *redis.Client, key string) (int, bool, error) {
	result, err := rateLimitScript.Run(ctx, client,
		[]string{r.counterKey(key), r.blockKey(key)},
		r.WindowSeconds, r.MaxRequests, r.BlockSeconds,
	).Int64Slice()
	if err != nil {
		return 0, false, err
	}
	if len(result) < 2 {
		return 0, false, fmt.Errorf("unexpected rate limit reply: %v", result)
	}
	count, ttl := result[0], result[1]
	if count >= 0 && count <= int64(r.MaxRequests) {
		return 0, false, nil
	}
	wait := int(ttl)
	if wait < 1 {
		wait = r.WindowSeconds
	}
	if wait < 1 {
		wait = 1
	}
	return wait, true, nil
}

// RateLimitMiddleware Redis 频率限制中间件，未配置 Redis 时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !rule.enabled() {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}

		waitSeconds, limited, err := rule.check(c.Request.Context(), client, key)
		if err != nil {
			// Redis 故障时不拦截登录
			logger.Warnw("rate_limit_check_failed", "prefix", rule.Prefix, "error", err)
			c.Next()
			return
		}
		if limited {
			msgKey := strings.TrimSpace(rule.MessageKey)
			if msgKey == "" {
				msgKey = "error.rate_limited"
			}
			logger.Infow("rate_limit_exceeded", "prefix", rule.Prefix, "client_ip", c.ClientIP(), "retry_after", waitSeconds)
			c.Header("Retry-After", strconv.Itoa(waitSeconds))
			response.TooManyRequests(c, i18n.Sprintf(i18n.ResolveLocale(c), msgKey, waitSeconds))
			c.Abort()
			return
		}

		c.Next()
	}
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 JSON 字段 + IP 作为限流 key，读取后恢复请求体
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(readJSONField(c, field))
		if value == "" {
			return c.ClientIP()
		}
		return fmt.Sprintf("%s|%s", value, c.ClientIP())
	}
}

func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if len(body) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload[field], &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

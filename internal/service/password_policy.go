package service

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fresh-groceries/internal/config"
)

// passwordPolicyError 携带 i18n key 的密码策略错误，errors.Is 匹配 ErrWeakPassword
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string {
	return e.key
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

func (e passwordPolicyError) Key() string {
	return e.key
}

func (e passwordPolicyError) Args() []interface{} {
	return e.args
}

// PasswordPolicyViolation 提取密码策略错误的文案 key 与参数
func PasswordPolicyViolation(err error) (string, []interface{}, bool) {
	var policyErr passwordPolicyError
	if !errors.As(err, &policyErr) {
		return "", nil, false
	}
	return policyErr.Key(), policyErr.Args(), true
}

// passwordCharRule 字符类别要求
type passwordCharRule struct {
	enabled func(config.PasswordPolicyConfig) bool
	match   func(rune) bool
	key     string
}

var passwordCharRules = []passwordCharRule{
	{
		enabled: func(p config.PasswordPolicyConfig) bool { return p.RequireUpper },
		match:   unicode.IsUpper,
		key:     "error.password_require_upper",
	},
	{
		enabled: func(p config.PasswordPolicyConfig) bool { return p.RequireLower },
		match:   unicode.IsLower,
		key:     "error.password_require_lower",
	},
	{
		enabled: func(p config.PasswordPolicyConfig) bool { return p.RequireNumber },
		match:   unicode.IsDigit,
		key:     "error.password_require_number",
	},
	{
		enabled: func(p config.PasswordPolicyConfig) bool { return p.RequireSpecial },
		match:   isSpecialRune,
		key:     "error.password_require_special",
	},
}

func isSpecialRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}

// validatePassword 按配置校验密码，返回第一条未满足的规则
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if password == "" {
		return passwordPolicyError{key: "error.password_required"}
	}
	if policy.MinLength > 0 && utf8.RuneCountInString(password) < policy.MinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}
	for _, rule := range passwordCharRules {
		if rule.enabled(policy) && strings.IndexFunc(password, rule.match) < 0 {
			return passwordPolicyError{key: rule.key}
		}
	}
	return nil
}

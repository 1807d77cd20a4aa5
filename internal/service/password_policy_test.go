package service

import (
	"errors"
	"testing"

	"github.com/fresh-groceries/internal/config"
)

func TestValidatePassword(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8, RequireLower: true, RequireNumber: true}
	cases := []struct {
		password string
		wantKey  string
	}{
		{"", "error.password_required"},
		{"abc1", "error.password_min_length"},
		{"ABCDEFG1", "error.password_require_lower"},
		{"abcdefgh", "error.password_require_number"},
		{"password123", ""},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if tc.wantKey == "" {
			if err != nil {
				t.Fatalf("password %q should pass, got %v", tc.password, err)
			}
			continue
		}
		key, _, ok := PasswordPolicyViolation(err)
		if !ok || key != tc.wantKey {
			t.Fatalf("password %q: want %s got %v", tc.password, tc.wantKey, err)
		}
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q: error should match ErrWeakPassword", tc.password)
		}
	}

	strict := config.PasswordPolicyConfig{RequireUpper: true, RequireSpecial: true}
	if key, _, _ := PasswordPolicyViolation(validatePassword(strict, "Secret 1")); key != "error.password_require_special" {
		t.Fatalf("space should not count as special, got %s", key)
	}
	if err := validatePassword(strict, "Secret!"); err != nil {
		t.Fatalf("strict password should pass, got %v", err)
	}
}

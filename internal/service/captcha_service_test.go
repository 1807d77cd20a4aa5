package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fresh-groceries/internal/config"
	"github.com/fresh-groceries/internal/constants"

	"github.com/mojocn/base64Captcha"
)

func TestCaptchaVerifyByScene(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Enabled: true, Login: true})
	store := base64Captcha.NewMemoryStore(16, time.Minute)
	svc.SetStore(store)

	if err := svc.Verify(constants.CaptchaSceneRegister, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("register scene disabled should pass, got %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{}); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("expected ErrCaptchaRequired, got %v", err)
	}

	if err := store.Set("c1", "ab3kq"); err != nil {
		t.Fatalf("seed captcha failed: %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{CaptchaID: "c1", CaptchaCode: "zzzzz"}); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("expected ErrCaptchaInvalid, got %v", err)
	}

	if err := store.Set("c2", "ab3kq"); err != nil {
		t.Fatalf("seed captcha failed: %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{CaptchaID: "c2", CaptchaCode: "AB3KQ"}); err != nil {
		t.Fatalf("verify captcha failed: %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneLogin, CaptchaVerifyPayload{CaptchaID: "c2", CaptchaCode: "ab3kq"}); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("expected captcha consumed after use, got %v", err)
	}
}

func TestCaptchaGenerateDisabled(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{})
	if _, err := svc.GenerateImageChallenge(); !errors.Is(err, ErrCaptchaDisabled) {
		t.Fatalf("expected ErrCaptchaDisabled, got %v", err)
	}
}

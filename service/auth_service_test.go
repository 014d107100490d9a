package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yousou/config"
	"yousou/model"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	prev := config.AppConfig
	config.AppConfig = &config.Config{
		AuthEnabled:   true,
		AuthUsername:  "admin",
		AuthPassword:  "s3cret",
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	}
	t.Cleanup(func() { config.AppConfig = prev })

	return NewAuthService()
}

func TestLoginAndValidate(t *testing.T) {
	s := newTestAuthService(t)

	resp, err := s.Login(&model.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	username, err := s.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestAuthService(t)

	tests := []struct {
		name string
		req  model.LoginRequest
	}{
		{name: "密码错误", req: model.LoginRequest{Username: "admin", Password: "wrong"}},
		{name: "用户名错误", req: model.LoginRequest{Username: "root", Password: "s3cret"}},
		{name: "两者皆空", req: model.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(&tt.req)
			assert.Error(t, err)
		})
	}
}

// 未配置管理密码时登录直接拒绝
func TestLoginWithoutConfiguredAccount(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = nil
	t.Cleanup(func() { config.AppConfig = prev })

	s := NewAuthService()
	_, err := s.Login(&model.LoginRequest{Username: "admin", Password: "anything"})
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	s := newTestAuthService(t)

	resp, err := s.Login(&model.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	_, err = s.ValidateToken(resp.Token + "x")
	assert.Error(t, err)
}

// 别的密钥签出来的令牌不被接受
func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	s := newTestAuthService(t)

	claims := JWTClaims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = s.ValidateToken(foreign)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	s := newTestAuthService(t)

	claims := JWTClaims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.ValidateToken(expired)
	assert.Error(t, err)
}

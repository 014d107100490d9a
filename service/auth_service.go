package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"yousou/config"
	"yousou/model"
)

// AuthService 认证服务
// 只有一个由环境变量配置的管理账号，没有用户存储
type AuthService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
	username  string
	password  string
}

// JWTClaims JWT声明
type JWTClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewAuthService 创建认证服务
func NewAuthService() *AuthService {
	service := &AuthService{
		jwtSecret: []byte("yousou-secret-key"),
		tokenTTL:  24 * time.Hour,
	}
	if config.AppConfig != nil {
		service.jwtSecret = []byte(config.AppConfig.JWTSecret)
		service.tokenTTL = time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
		service.username = config.AppConfig.AuthUsername
		service.password = config.AppConfig.AuthPassword
	}
	return service
}

// Login 校验账号密码并签发令牌
func (s *AuthService) Login(req *model.LoginRequest) (*model.LoginResponse, error) {
	if s.password == "" {
		return nil, fmt.Errorf("未配置管理账号")
	}
	if !secureEqual(req.Username, s.username) || !secureEqual(req.Password, s.password) {
		return nil, fmt.Errorf("用户名或密码错误")
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := JWTClaims{
		Username: req.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "yousou",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("生成令牌失败: %w", err)
	}

	return &model.LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateToken 验证令牌并返回其中的用户名
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名方法: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("无效的令牌")
	}
	return claims.Username, nil
}

// secureEqual 常数时间字符串比较，避免时序侧信道
func secureEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}

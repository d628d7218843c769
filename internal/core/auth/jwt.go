package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTer 负责签发与校验访问令牌。
// 签发侧不校验 identity 是否真实存在（已知缺口：拿到任意 email 都能换 token）。
type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Issue 把调用方提供的 identity 原样打进 claims，附加 iss/iat/exp。
func (j *JWTer) Issue(identity map[string]any) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["iss"] = j.Issuer
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(j.TTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTer) Parse(tokenStr string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(jwt.MapClaims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// Email 从 claims 中取出身份 email，缺失或类型不符返回空串。
func Email(claims jwt.MapClaims) string {
	if v, ok := claims["email"].(string); ok {
		return v
	}
	return ""
}

package lib

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"watchmarket_server/structs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewSessionToken signs an HS256 token whose subject is the user id
func NewSessionToken(userId, secret string, expiry time.Duration) (string, *structs.AuthClaims, error) {
	now := time.Now()
	claims := &structs.AuthClaims{
		Sub: userId,
		Iat: now,
		Exp: now.Add(expiry),
		Jti: uuid.New(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": claims.Sub,
		"iat": claims.Iat.Unix(),
		"exp": claims.Exp.Unix(),
		"jti": claims.Jti.String(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, claims, nil
}

// ParseToken parses and validates a JWT token string and returns the claims
func ParseToken(tokenStr string, secret string) (*structs.AuthClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: invalid sub claim", ErrInvalidToken)
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: invalid iat claim", ErrInvalidToken)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: invalid exp claim", ErrInvalidToken)
	}

	jtiStr, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: invalid jti claim", ErrInvalidToken)
	}

	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid UUID in jti claim: %v", ErrInvalidToken, err)
	}

	return &structs.AuthClaims{
		Sub: sub,
		Iat: time.Unix(int64(iat), 0),
		Exp: time.Unix(int64(exp), 0),
		Jti: jti,
	}, nil
}

// ExtractToken reads the session token from the Authorization header or the session cookie
func ExtractToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return "", ErrInvalidToken
		}
		return strings.TrimSpace(token), nil
	}
	return GetCookieValue(SessionCookieName, r)
}

func ExtractClaims(r *http.Request, secret string) (*structs.AuthClaims, error) {
	token, err := ExtractToken(r)
	if err != nil {
		return nil, err
	}
	return ParseToken(token, secret)
}

package lib

import (
	"fmt"
	"mesero_server/structs"
	"mesero_server/structs/tables"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken issues a signed token carrying the employee's identity
// and role.
func GenerateAccessToken(employee *tables.Employee, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  employee.ID.String(),
		"name": employee.Name,
		"role": string(employee.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(expiry).Unix(),
		"jti":  uuid.New().String(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken parses and validates a JWT token string and returns the claims
func ParseToken(tokenStr string, secret string) (*structs.AuthClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid sub claim")
	}
	sub, err := uuid.Parse(subStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in sub claim: %w", err)
	}

	name, ok := claims["name"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid name claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid role claim")
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid iat claim")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid exp claim")
	}

	jtiStr, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid jti claim")
	}
	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in jti claim: %w", err)
	}

	return &structs.AuthClaims{
		Sub:  sub,
		Name: name,
		Role: role,
		Iat:  time.Unix(int64(iat), 0),
		Exp:  time.Unix(int64(exp), 0),
		Jti:  jti,
	}, nil
}

// ExtractClaims reads the bearer token from the Authorization header.
func ExtractClaims(r *http.Request, secret string) (*structs.AuthClaims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrInvalidToken
	}
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil, ErrInvalidToken
	}
	return ParseToken(tokenStr, secret)
}

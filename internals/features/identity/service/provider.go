package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Profile is what the identity provider knows about a verified credential.
type Profile struct {
	SubjectID string
	Email     string
	FullName  string
	MetaRole  string // provider-side metadata role, may be empty
}

// TokenVerifier hides the identity provider. The production implementation
// verifies the provider's session JWT; tests substitute a stub.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Profile, error)
}

// JWTVerifier verifies HS256 session tokens issued by the identity
// provider's JWT template (sub / email / name / metadata.role claims).
type JWTVerifier struct {
	Secret string
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{Secret: secret}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Profile, error) {
	if v.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(v.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	p := &Profile{
		SubjectID: claimString(claims, "sub"),
		Email:     claimString(claims, "email"),
		FullName:  claimString(claims, "name"),
	}
	if p.SubjectID == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	// metadata.role may arrive nested or flattened depending on the
	// provider-side token template.
	if meta, ok := claims["metadata"].(map[string]interface{}); ok {
		if r, ok := meta["role"].(string); ok {
			p.MetaRole = strings.ToLower(strings.TrimSpace(r))
		}
	}
	if p.MetaRole == "" {
		p.MetaRole = strings.ToLower(strings.TrimSpace(claimString(claims, "role")))
	}

	return p, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims of the storefront session token. Subject carries the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type jwtAuthenticator struct {
	secret []byte
	admins map[string]struct{}
}

func NewJWTAuthenticator(cfg config.Auth) *jwtAuthenticator {
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		admins[strings.ToLower(email)] = struct{}{}
	}
	return &jwtAuthenticator{
		secret: []byte(cfg.JWTSecret),
		admins: admins,
	}
}

func (a *jwtAuthenticator) Authenticate(_ context.Context, token string) (entities.Principal, error) {
	if token == "" {
		return entities.Principal{}, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return entities.Principal{}, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	_, isAdmin := a.admins[strings.ToLower(claims.Email)]
	return entities.Principal{
		UserID:  claims.Subject,
		Email:   claims.Email,
		IsAdmin: isAdmin && claims.Email != "",
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/speech-analytics/internal/adapter"
	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"
)

type authService struct {
	keys             adapter.KeyProvider
	parser           *jwt.Parser
	permissionsClaim string

	logger *logger.Logger
}

func NewAuthService(keys adapter.KeyProvider, cfg config.Keycloak, logger *logger.Logger) AuthService {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &authService{
		keys:             keys,
		parser:           jwt.NewParser(opts...),
		permissionsClaim: cfg.PermissionsClaim,
		logger:           logger,
	}
}

// Authenticate verifies the Authorization header. An empty header yields
// the anonymous token.
func (a *authService) Authenticate(ctx context.Context, header string) (models.AuthToken, error) {
	if strings.TrimSpace(header) == "" {
		return models.AnonymousToken(), nil
	}

	raw, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	token, err := a.parser.Parse(raw, func(token *jwt.Token) (any, error) {
		kid, err := utils.KeyID(token)
		if err != nil {
			return nil, err
		}
		return a.keys.Key(ctx, kid)
	})
	if err != nil {
		if keysUnavailable(err) {
			return models.AuthToken{}, fmt.Errorf("%w: %w", ErrKeysUnavailable, err)
		}
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, err := utils.ClaimsJSON(token)
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	permissions, ok := permissionsFromClaims(claims, a.permissionsClaim)
	if !ok {
		return models.AuthToken{}, fmt.Errorf("%w: missing %q claim", ErrInvalidToken, a.permissionsClaim)
	}

	return models.AuthToken{
		UserID:      gjson.GetBytes(claims, "sub").String(),
		Username:    gjson.GetBytes(claims, "preferred_username").String(),
		Permissions: permissions,
	}, nil
}

func (a *authService) Authorize(ctx context.Context, token models.AuthToken, permission models.Permission) error {
	if !token.Has(permission) {
		logger.FromContext(ctx).Warn().
			Str("user_id", token.UserID).
			Str("permission", string(permission)).
			Msg("access denied")
		return fmt.Errorf("%w: %s", ErrAccessDenied, permission)
	}
	return nil
}

// keysUnavailable reports whether verification failed because the key set
// could not be loaded, as opposed to a bad token.
func keysUnavailable(err error) bool {
	if errors.Is(err, adapter.ErrKeyNotFound) || errors.Is(err, utils.ErrMissingKeyID) {
		return false
	}
	return errors.Is(err, adapter.ErrFetchingKeys) ||
		errors.Is(err, adapter.ErrDecodingKeySet) ||
		errors.Is(err, adapter.ErrNoSigningKeys)
}

// permissionsFromClaims reads the claim at path. Both a JSON array and a
// space separated string are accepted; unknown values are skipped. ok is
// false when the claim is absent.
func permissionsFromClaims(claims []byte, path string) (permissions []models.Permission, ok bool) {
	result := gjson.GetBytes(claims, path)
	if !result.Exists() {
		return nil, false
	}

	var values []string
	if result.IsArray() {
		for _, item := range result.Array() {
			values = append(values, item.String())
		}
	} else {
		values = strings.Fields(result.String())
	}

	permissions = make([]models.Permission, 0, len(values))
	for _, v := range values {
		if p, known := models.ParsePermission(v); known && !slices.Contains(permissions, p) {
			permissions = append(permissions, p)
		}
	}
	return permissions, true
}


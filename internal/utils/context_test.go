// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/speech-analytics/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAuthTokenCtxKey(t *testing.T) {
	if AuthTokenCtxKey.String() != "authToken" {
		t.Errorf("expected 'authToken', got '%s'", AuthTokenCtxKey.String())
	}
}

func TestGetAuthTokenFromContext_Success(t *testing.T) {
	want := models.AuthToken{
		UserID:      "f3b1",
		Username:    "alice",
		Permissions: []models.Permission{models.PermissionGetSpeech},
	}
	ctx := WithAuthToken(context.Background(), want)

	got, ok := GetAuthTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.UserID != want.UserID || got.Username != want.Username {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if !got.Has(models.PermissionGetSpeech) {
		t.Error("expected permission to survive the round trip")
	}
}

func TestGetAuthTokenFromContext_Missing(t *testing.T) {
	_, ok := GetAuthTokenFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetAuthTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthTokenCtxKey, "not-a-token")

	_, ok := GetAuthTokenFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetAuthTokenFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.AnonymousToken())

	_, ok := GetAuthTokenFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestTraceID(t *testing.T) {
	if got := GetTraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}

	ctx := WithTraceID(context.Background(), "trace-1")
	if got := GetTraceIDFromContext(ctx); got != "trace-1" {
		t.Errorf("expected 'trace-1', got %q", got)
	}
}

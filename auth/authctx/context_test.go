package authctx

import (
	"context"
	"errors"
	"testing"
)

type fakeClaims struct {
	UserID int64
}

func TestSetGet(t *testing.T) {
	ctx := Set(context.Background(), &fakeClaims{UserID: 7})

	claims, ok := Get[*fakeClaims](ctx)
	if !ok {
		t.Fatal("expected claims in context")
	}
	if claims.UserID != 7 {
		t.Errorf("expected user 7, got %d", claims.UserID)
	}
}

func TestGet_Missing(t *testing.T) {
	if _, ok := Get[*fakeClaims](context.Background()); ok {
		t.Error("expected no claims in empty context")
	}
}

func TestGet_WrongType(t *testing.T) {
	ctx := Set(context.Background(), "not-claims")
	if _, ok := Get[*fakeClaims](ctx); ok {
		t.Error("expected type mismatch to fail")
	}
}

func TestMustGet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing claims")
		}
	}()
	MustGet[*fakeClaims](context.Background())
}

func TestGetOrError(t *testing.T) {
	_, err := GetOrError[*fakeClaims](context.Background())
	if !errors.Is(err, ErrNoClaims) {
		t.Errorf("expected ErrNoClaims, got %v", err)
	}

	ctx := Set(context.Background(), &fakeClaims{UserID: 1})
	claims, err := GetOrError[*fakeClaims](ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 1 {
		t.Errorf("expected user 1, got %d", claims.UserID)
	}
}

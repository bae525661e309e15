package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/storefront/auth"
	"github.com/commercekit/storefront/auth/authctx"
	"github.com/commercekit/storefront/server/middleware"
)

type countingValidator struct {
	calls  int
	claims any
	err    error
}

func (v *countingValidator) ValidateToken(token string) (any, error) {
	v.calls++
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

type gateClaims struct {
	UserID int64
}

func gateRouter(validator auth.TokenValidator, skip ...string) (*gin.Engine, *bool, *any) {
	gin.SetMode(gin.TestMode)
	reached := false
	var seenClaims any

	r := gin.New()
	r.Use(middleware.Auth(middleware.AuthConfig{Validator: validator, SkipPaths: skip}))
	r.GET("/protected", func(c *gin.Context) {
		reached = true
		if claims, ok := authctx.Get[*gateClaims](c.Request.Context()); ok {
			seenClaims = claims
		}
		c.Status(http.StatusOK)
	})
	return r, &reached, &seenClaims
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return body["error"]
}

func TestAuth_NoHeader(t *testing.T) {
	v := &countingValidator{}
	r, reached, _ := gateRouter(v)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/protected", http.NoBody))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if got := errorBody(t, rr); got != "Access denied. No token provided." {
		t.Errorf("unexpected error message: %q", got)
	}
	if v.calls != 0 {
		t.Errorf("validator must not be invoked without a header, got %d calls", v.calls)
	}
	if *reached {
		t.Error("handler must not run")
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Bearer ", "Basic abc123", "token-without-scheme"} {
		v := &countingValidator{}
		r, reached, _ := gateRouter(v)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", http.NoBody)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rr.Code)
		}
		if v.calls != 0 {
			t.Errorf("header %q: validator must not be invoked", header)
		}
		if *reached {
			t.Errorf("header %q: handler must not run", header)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	v := &countingValidator{err: errors.New("jwt: token expired")}
	r, reached, _ := gateRouter(v)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer some.expired.token")
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	// The wire message never reveals why the token was rejected.
	if got := errorBody(t, rr); got != "Invalid or expired token." {
		t.Errorf("unexpected error message: %q", got)
	}
	if v.calls != 1 {
		t.Errorf("expected exactly one validator call, got %d", v.calls)
	}
	if *reached {
		t.Error("handler must not run on rejection")
	}
}

func TestAuth_ValidToken(t *testing.T) {
	v := &countingValidator{claims: &gateClaims{UserID: 42}}
	r, reached, seen := gateRouter(v)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer good.token.here")
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !*reached {
		t.Fatal("handler should have run")
	}
	claims, ok := (*seen).(*gateClaims)
	if !ok {
		t.Fatalf("expected claims in context, got %T", *seen)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user 42, got %d", claims.UserID)
	}
}

func TestAuth_Idempotent(t *testing.T) {
	v := &countingValidator{claims: &gateClaims{UserID: 1}}
	r, _, _ := gateRouter(v)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", http.NoBody)
		req.Header.Set("Authorization", "Bearer same.token.twice")
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rr.Code)
		}
	}
	if v.calls != 2 {
		t.Errorf("expected 2 validator calls, got %d", v.calls)
	}
}

func TestAuth_SkipPaths(t *testing.T) {
	v := &countingValidator{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(middleware.AuthConfig{Validator: v, SkipPaths: []string{"/public"}}))
	r.GET("/public/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/public/ping", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for skipped path, got %d", rr.Code)
	}
	if v.calls != 0 {
		t.Errorf("validator must not be invoked for skipped paths")
	}
}

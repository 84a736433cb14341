package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmolina/shop-service/internal/auth"
	mbr "github.com/dmolina/shop-service/internal/member"
	ord "github.com/dmolina/shop-service/internal/order"
)

// testEnv wires the real router against the in-memory stubs.
type testEnv struct {
	router  *gin.Engine
	issuer  *auth.TokenIssuer
	members *stubMemberRepo
	items   *stubItemRepo
	carts   *stubCartRepo
	orders  *stubOrderRepo
}

func newTestEnv() *testEnv {
	members := newStubMemberRepo()
	items := newStubItemRepo()
	carts := newStubCartRepo(items)
	orders := newStubOrderRepo(items)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	r := buildRouter(routerDeps{
		issuer:    issuer,
		members:   members,
		memberSvc: mbr.NewService(members, 4), // min bcrypt cost, tests only
		items:     items,
		carts:     carts,
		orderSvc:  ord.NewService(orders, items, carts),
	})
	return &testEnv{router: r, issuer: issuer, members: members, items: items, carts: carts, orders: orders}
}

// seedMember registers a member directly in the stub and returns it with a
// valid session token.
func (e *testEnv) seedMember(t *testing.T, email, password, role string) (*mbr.Member, string) {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	m := &mbr.Member{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Test Member",
		PasswordHash: hash,
		Role:         role,
	}
	if err := e.members.Create(context.Background(), m); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	token, err := e.issuer.Issue(m.ID, m.Email, m.Role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return m, token
}

// do runs one request through the router. A non-empty token becomes the
// Bearer credential.
func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/utpal5/Ticketingsystem/internal/config"
	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	service := NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
	}, users)
	return service, users
}

func TestLoginIssuesParseableToken(t *testing.T) {
	service, users := newAuthFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users.add(domain.Identity{Username: "alice", Role: domain.RoleAdmin}, string(hash))

	identity, token, expiresAt, err := service.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("role = %s", identity.Role)
	}
	if expiresAt.IsZero() {
		t.Fatal("expected expiry")
	}

	claims, err := service.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != identity.ID || claims.Role != domain.RoleAdmin {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, users := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	users.add(domain.Identity{Username: "alice", Role: domain.RoleUser}, string(hash))

	if _, _, _, err := service.Login(context.Background(), "alice", "wrong"); !util.IsAuthentication(err) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, _, _, err := service.Login(context.Background(), "nobody", "secret"); !util.IsAuthentication(err) {
		t.Fatalf("unknown user: %v", err)
	}
}

func TestSignupForcesUserRole(t *testing.T) {
	service, _ := newAuthFixture()

	identity, err := service.Signup(context.Background(), SignupInput{
		Username:  "bob",
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Barker",
		Password:  "hunter2",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("role = %s, want USER", identity.Role)
	}
	if identity.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	service, users := newAuthFixture()
	users.add(domain.Identity{Username: "bob", Role: domain.RoleUser}, "x")

	_, err := service.Signup(context.Background(), SignupInput{Username: "bob", Password: "pw"})
	de := util.ToDomainError(err)
	if de == nil || de.Code != util.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	service, _ := newAuthFixture()
	if _, err := service.Signup(context.Background(), SignupInput{Username: " ", Password: "pw"}); !util.IsValidation(err) {
		t.Fatalf("blank username: %v", err)
	}
}

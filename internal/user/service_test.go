package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("NewUserHasNoSubscription", func(t *testing.T) {
		svc := user.NewService(user.NewMemoryRepository(), "")

		u, err := svc.Login(ctx, user.LoginDTO{Email: " Kwame@Example.com "})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if u.Email != "kwame@example.com" {
			t.Errorf("email not normalised: %q", u.Email)
		}
		if u.Role != user.RoleUser || u.SubscriptionStatus != user.SubscriptionNone {
			t.Errorf("unexpected user: %+v", u)
		}

		again, err := svc.Login(ctx, user.LoginDTO{Email: "kwame@example.com"})
		if err != nil {
			t.Fatalf("second Login failed: %v", err)
		}
		if again.ID != u.ID {
			t.Errorf("second sign-in created a new user")
		}
	})

	t.Run("AdminAddressSignsInAsAdmin", func(t *testing.T) {
		svc := user.NewService(user.NewMemoryRepository(), "")

		u, err := svc.Login(ctx, user.LoginDTO{Email: "admin@medprep.gh"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if u.Role != user.RoleAdmin || u.SubscriptionStatus != user.SubscriptionActive {
			t.Errorf("unexpected admin: %+v", u)
		}
	})

	t.Run("AdminPasswordChecked", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("bcrypt: %v", err)
		}
		svc := user.NewService(user.NewMemoryRepository(), string(hash))

		_, err = svc.Login(ctx, user.LoginDTO{Email: "admin@medprep.gh", Password: "wrong"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("want ErrInvalidCredentials, got %v", err)
		}

		if _, err := svc.Login(ctx, user.LoginDTO{Email: "admin@medprep.gh", Password: "s3cret"}); err != nil {
			t.Errorf("Login with correct password failed: %v", err)
		}
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		svc := user.NewService(user.NewMemoryRepository(), "")
		for _, email := range []string{"", "kwame", "@example.com", "kwame@"} {
			if _, err := svc.Login(ctx, user.LoginDTO{Email: email}); !errors.Is(err, user.ErrInvalidInput) {
				t.Errorf("email %q: want ErrInvalidInput, got %v", email, err)
			}
		}
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(user.NewMemoryRepository(), "")

	u, err := svc.Register(ctx, user.RegisterDTO{Name: "Dr. Kwame Mensah", Email: "kwame@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if u.Name != "Dr. Kwame Mensah" || u.SubscriptionStatus != user.SubscriptionNone {
		t.Errorf("unexpected user: %+v", u)
	}

	if _, err := svc.Register(ctx, user.RegisterDTO{Name: "Again", Email: "kwame@example.com"}); !errors.Is(err, user.ErrUserExists) {
		t.Errorf("want ErrUserExists, got %v", err)
	}
	if _, err := svc.Register(ctx, user.RegisterDTO{Name: " ", Email: "x@example.com"}); !errors.Is(err, user.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput, got %v", err)
	}
}

func TestUpdateSubscription(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(user.NewMemoryRepository(), "")

	u, err := svc.Register(ctx, user.RegisterDTO{Name: "Ama", Email: "ama@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	updated, err := svc.UpdateSubscription(ctx, u.ID, user.SubscriptionActive)
	if err != nil {
		t.Fatalf("UpdateSubscription failed: %v", err)
	}
	if updated.SubscriptionStatus != user.SubscriptionActive {
		t.Errorf("status = %s", updated.SubscriptionStatus)
	}

	stored, err := svc.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.SubscriptionStatus != user.SubscriptionActive {
		t.Errorf("update was not persisted")
	}

	if _, err := svc.UpdateSubscription(ctx, u.ID, "lifetime"); !errors.Is(err, user.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateSubscription(ctx, "missing", user.SubscriptionActive); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("want ErrUserNotFound, got %v", err)
	}
}

func TestCurrent(t *testing.T) {
	svc := user.NewService(user.NewMemoryRepository(), "")

	u, err := svc.Register(context.Background(), user.RegisterDTO{Name: "Ama", Email: "ama@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	ctx := auth.WithClaims(context.Background(), &auth.Claims{UserID: u.ID, Role: "user"})
	got, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("Current returned %s, want %s", got.ID, u.ID)
	}

	if _, err := svc.Current(context.Background()); !errors.Is(err, auth.ErrNoClaims) {
		t.Errorf("want ErrNoClaims, got %v", err)
	}
}

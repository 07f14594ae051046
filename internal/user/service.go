package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const defaultName = "User"

type UserService interface {
	Login(ctx context.Context, dto LoginDTO) (*User, error)
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Current(ctx context.Context) (*User, error)
	UpdateSubscription(ctx context.Context, id string, status SubscriptionStatus) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type userService struct {
	repo          UserRepository
	adminPassHash string
}

func NewService(repo UserRepository, adminPassHash string) UserService {
	return &userService{repo: repo, adminPassHash: adminPassHash}
}

// Login signs in by email. Addresses containing "admin" sign in as an
// administrator and, when a hash is configured, must present the password.
// Unknown addresses get a fresh account without a subscription.
func (s *userService) Login(ctx context.Context, dto LoginDTO) (*User, error) {
	log := config.WithContext(ctx)

	email := normalizeEmail(dto.Email)
	if !validEmail(email) {
		return nil, ErrInvalidInput
	}

	role := RoleUser
	if strings.Contains(email, "admin") {
		role = RoleAdmin
		if s.adminPassHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(s.adminPassHash), []byte(dto.Password)); err != nil {
				log.Warn("Admin sign-in rejected")
				return nil, ErrInvalidCredentials
			}
		}
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if u != nil {
		if role == RoleAdmin && u.Role != RoleAdmin {
			u.Role = RoleAdmin
			u.SubscriptionStatus = SubscriptionActive
			if err := s.repo.Update(ctx, u); err != nil {
				return nil, err
			}
		}
		log.WithField("user_id", u.ID).Info("User signed in")
		return u, nil
	}

	u = &User{
		ID:                 uuid.NewString(),
		Name:               defaultName,
		Email:              email,
		Role:               role,
		SubscriptionStatus: SubscriptionNone,
	}
	if role == RoleAdmin {
		u.Name = "Admin User"
		u.SubscriptionStatus = SubscriptionActive
	}
	if err := s.repo.Create(ctx, u); err != nil {
		log.WithError(err).Error("Failed to create user on sign-in")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User created on first sign-in")
	return u, nil
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	email := normalizeEmail(dto.Email)
	if name == "" || !validEmail(email) {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	u := &User{
		ID:                 uuid.NewString(),
		Name:               name,
		Email:              email,
		Role:               RoleUser,
		SubscriptionStatus: SubscriptionNone,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		log.WithError(err).Error("Failed to register user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Current resolves the user behind the request's token claims.
func (s *userService) Current(ctx context.Context) (*User, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, claims.UserID)
}

func (s *userService) UpdateSubscription(ctx context.Context, id string, status SubscriptionStatus) (*User, error) {
	log := config.WithContext(ctx)

	if !status.Valid() {
		return nil, ErrInvalidInput
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.SubscriptionStatus = status
	if err := s.repo.Update(ctx, u); err != nil {
		log.WithError(err).Error("Failed to update subscription")
		return nil, err
	}

	log.WithField("user_id", id).Infof("Subscription set to %s", status)
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	repo "github.com/oksasatya/go-task-manager/internal/domain/repository"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

// AuthService registers users, exchanges credentials for bearer tokens and
// resolves tokens back to users.
type AuthService struct {
	Users      repo.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int

	dummyOnce sync.Once
	dummyHash string
}

type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{Users: users, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

// Register creates an account. The password is stored as a bcrypt hash of its first 72 bytes.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, invalidInput("email and password are required")
	}
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPasswordWithCost(password, s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		helpers.LogError(s.Logger, "create user failed", err, logrus.Fields{"email": email})
		return nil, err
	}
	metricRegistrations.Add(1)
	return u, nil
}

// Authenticate validates email/password without issuing a token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		// spend the same bcrypt work as a real comparison
		helpers.CompareHashAndPassword(s.dummy(), password)
		metricLoginFailures.Add(1)
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		metricLoginFailures.Add(1)
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and issues a bearer token with the email as subject.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	access, exp, err := s.JWT.GenerateAccessToken(u.Email)
	if err != nil {
		helpers.LogError(s.Logger, "generate access token failed", err, logrus.Fields{"user_id": u.ID})
		return nil, err
	}
	metricLogins.Add(1)
	return &Token{AccessToken: access, TokenType: "bearer", ExpiresAt: exp}, nil
}

// Resolve verifies a bearer token and loads its subject.
func (s *AuthService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	u, err := s.Users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = helpers.HashPasswordWithCost("not-a-real-password", s.BcryptCost)
	})
	return s.dummyHash
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/model"
	"github.com/dandyZicky/wfh-attendance/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenLifetime is how long a session token stays valid. There is no
// server-side revocation: a token is good until this expiry.
const TokenLifetime = time.Hour

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
	DeleteUser(ctx context.Context, userKey string) error
}

type authService struct {
	repo      repository.CredentialRepository
	jwtSecret string
}

func NewAuthService(repo repository.CredentialRepository, jwtSecret string) AuthService {
	return &authService{repo: repo, jwtSecret: jwtSecret}
}

// Login verifies the credential pair and issues a signed session token.
// Unknown email and wrong password fail identically so the response never
// reveals whether an email is registered.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	cred, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(cred)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Msg:   "login successful",
		Token: token,
		User: dto.ProfileResponse{
			UserKey:  cred.UserKey,
			Email:    cred.Email,
			Username: cred.Username,
		},
	}, nil
}

// Register stores a new credential row keyed by the caller-supplied user_key.
// The key is generated by user-management so both stores can be joined on it.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) error {
	taken, err := s.repo.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return err
	}

	cred := &model.Credential{
		UserKey:      req.UserKey,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, cred); err != nil {
		// The pre-check races with concurrent registrations; the unique
		// constraint is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// DeleteUser removes the credential row. Used as the compensating action when
// directory creation fails after credential creation succeeded.
func (s *authService) DeleteUser(ctx context.Context, userKey string) error {
	affected, err := s.repo.DeleteByUserKey(ctx, userKey)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *authService) generateToken(cred *model.Credential) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      cred.UserKey,
		"email":    cred.Email,
		"username": cred.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

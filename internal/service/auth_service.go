package service

import (
	"context"
	"errors"
	"fmt"

	"cms-backend/internal/dto"
	"cms-backend/internal/entity"
	"cms-backend/internal/repository"
	"cms-backend/pkg/apperror"
	"cms-backend/pkg/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	LoginOrRegister(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error)
	IssueToken(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// LoginOrRegister logs the caller in when the email is known, otherwise
// registers a new user with its profile. A token is returned either
// way.
func (s *authService) LoginOrRegister(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error) {
	if req.Email == nil || !validation.Email(*req.Email) {
		return nil, apperror.New(apperror.ErrInvalidParams, "Invalid email")
	}

	if req.Password != nil && !validation.Password(*req.Password) {
		return nil, apperror.New(apperror.ErrInvalidParams, "Invalid password")
	}

	user, err := s.userRepo.FindByEmail(ctx, *req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user, err = s.register(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	if user.Profile == nil {
		return nil, apperror.Newf(apperror.ErrNotFound, "User with id %d does not have a profile :(", user.ID)
	}

	token, err := s.tokenRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResult{
		Token:   token.Key,
		Profile: buildProfileResponse(user),
	}, nil
}

// IssueToken validates credentials and returns the caller's token.
// Unknown email and wrong password produce the same message so neither
// can be probed.
func (s *authService) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.New(apperror.ErrInvalidParams, "Invalid email or password")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", apperror.New(apperror.ErrInvalidParams, "Invalid email or password")
	}

	token, err := s.tokenRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return "", err
	}

	return token.Key, nil
}

func (s *authService) register(ctx context.Context, req dto.LoginRequest) (*entity.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Usernames are synthesized; the email keeps them unique.
	user := &entity.User{
		Username:     fmt.Sprintf("%s_%s_%s", *req.FirstName, *req.LastName, *req.Email),
		Email:        *req.Email,
		FirstName:    *req.FirstName,
		LastName:     *req.LastName,
		PasswordHash: string(hash),
	}

	profile := &entity.Profile{
		Address: deref(req.Address),
		PhoneNo: *req.PhoneNo,
		City:    deref(req.City),
		State:   deref(req.State),
		Country: deref(req.Country),
		PinCode: *req.PinCode,
	}

	if err := validation.Struct(profile); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user, profile); err != nil {
		return nil, err
	}

	user.Profile = profile

	return user, nil
}

// validateRegistration reports the first missing required field, in the
// order the fields are documented.
func validateRegistration(req dto.LoginRequest) error {
	var missing string
	switch {
	case req.FirstName == nil:
		missing = "first_name"
	case req.LastName == nil:
		missing = "last_name"
	case req.Email == nil:
		missing = "email"
	case req.Password == nil:
		missing = "password"
	case req.PhoneNo == nil:
		missing = "phone_no"
	case req.PinCode == nil:
		missing = "pin_code"
	default:
		return nil
	}

	return apperror.Newf(apperror.ErrInvalidParams, "Required param %s missing in params", missing)
}

func buildProfileResponse(user *entity.User) dto.ProfileResponse {
	profile := user.Profile

	return dto.ProfileResponse{
		ID:        user.ID,
		FullName:  user.FullName(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Address:   profile.Address,
		PhoneNo:   profile.PhoneNo,
		City:      profile.City,
		State:     profile.State,
		Country:   profile.Country,
		PinCode:   profile.PinCode,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

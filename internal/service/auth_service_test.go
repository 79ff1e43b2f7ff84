package service

import (
	"context"
	"fmt"
	"testing"

	"cms-backend/internal/dto"
	"cms-backend/internal/entity"
	"cms-backend/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	f.nextID++
	user.ID = f.nextID
	if profile != nil {
		profile.UserID = user.ID
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakeTokenRepo struct {
	byUser map[uint]*entity.AuthToken
	minted int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byUser: map[uint]*entity.AuthToken{}}
}

func (f *fakeTokenRepo) GetOrCreate(ctx context.Context, userID uint) (*entity.AuthToken, error) {
	if token, ok := f.byUser[userID]; ok {
		return token, nil
	}
	f.minted++
	token := &entity.AuthToken{
		ID:     uint(f.minted),
		UserID: userID,
		Key:    fmt.Sprintf("token-for-user-%d", userID),
	}
	f.byUser[userID] = token
	return token, nil
}

func (f *fakeTokenRepo) FindByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	for _, token := range f.byUser {
		if token.Key == key {
			return token, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func int64Ptr(v int64) *int64 { return &v }

func registrationRequest() dto.LoginRequest {
	return dto.LoginRequest{
		FirstName: strPtr("Mahesh"),
		LastName:  strPtr("Kumar"),
		Email:     strPtr("mahesh@example.com"),
		Password:  strPtr("Mahesh@123"),
		Address:   strPtr("12 MG Road"),
		PhoneNo:   int64Ptr(9876543210),
		City:      strPtr("Bangalore"),
		State:     strPtr("Karnataka"),
		Country:   strPtr("India"),
		PinCode:   int64Ptr(560037),
	}
}

func TestLoginOrRegisterCreatesUser(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := NewAuthService(users, tokens)

	result, err := svc.LoginOrRegister(context.Background(), registrationRequest())
	require.NoError(t, err)

	assert.Equal(t, "token-for-user-1", result.Token)
	assert.Equal(t, "Mahesh Kumar", result.Profile.FullName)
	assert.Equal(t, int64(9876543210), result.Profile.PhoneNo)
	assert.Equal(t, int64(560037), result.Profile.PinCode)

	stored, err := users.FindByEmail(context.Background(), "mahesh@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Mahesh_Kumar_mahesh@example.com", stored.Username)

	// The plaintext never gets stored.
	assert.NotEqual(t, "Mahesh@123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Mahesh@123")))
}

func TestLoginOrRegisterIdempotentToken(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := NewAuthService(users, tokens)
	ctx := context.Background()

	first, err := svc.LoginOrRegister(ctx, registrationRequest())
	require.NoError(t, err)

	// The same email logs in and gets the very same token back.
	second, err := svc.LoginOrRegister(ctx, dto.LoginRequest{
		Email:    strPtr("mahesh@example.com"),
		Password: strPtr("Mahesh@123"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, 1, tokens.minted)
	assert.Len(t, users.byEmail, 1)
}

func TestLoginOrRegisterRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo())
	ctx := context.Background()

	_, err := svc.LoginOrRegister(ctx, dto.LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, "Invalid email", apperror.Message(err))

	_, err = svc.LoginOrRegister(ctx, dto.LoginRequest{Email: strPtr("not-an-email")})
	require.Error(t, err)
	assert.Equal(t, "Invalid email", apperror.Message(err))

	_, err = svc.LoginOrRegister(ctx, dto.LoginRequest{
		Email:    strPtr("mahesh@example.com"),
		Password: strPtr("weak"),
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid password", apperror.Message(err))
}

func TestLoginOrRegisterMissingFieldOrder(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo())
	ctx := context.Background()

	strip := func(mutate func(*dto.LoginRequest)) dto.LoginRequest {
		req := registrationRequest()
		mutate(&req)
		return req
	}

	tests := []struct {
		req  dto.LoginRequest
		want string
	}{
		{strip(func(r *dto.LoginRequest) { r.FirstName = nil }), "first_name"},
		{strip(func(r *dto.LoginRequest) { r.LastName = nil }), "last_name"},
		{strip(func(r *dto.LoginRequest) { r.Password = nil }), "password"},
		{strip(func(r *dto.LoginRequest) { r.PhoneNo = nil }), "phone_no"},
		{strip(func(r *dto.LoginRequest) { r.PinCode = nil }), "pin_code"},
		// first_name is reported before the rest when several are gone
		{strip(func(r *dto.LoginRequest) { r.FirstName = nil; r.PinCode = nil }), "first_name"},
	}

	for _, tt := range tests {
		_, err := svc.LoginOrRegister(ctx, tt.req)
		require.Error(t, err, tt.want)
		assert.Equal(t, "Required param "+tt.want+" missing in params", apperror.Message(err))
	}
}

func TestLoginOrRegisterProfileValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo())

	req := registrationRequest()
	req.PhoneNo = int64Ptr(12345)

	_, err := svc.LoginOrRegister(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, apperror.Message(err), "phone_no should be exactly 10 digits")

	req = registrationRequest()
	req.PinCode = int64Ptr(12345678)

	_, err = svc.LoginOrRegister(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, apperror.Message(err), "pin_code should be exactly 6 digits")
}

func TestLoginOrRegisterUserWithoutProfile(t *testing.T) {
	users := newFakeUserRepo()
	users.byEmail["bare@example.com"] = &entity.User{ID: 9, Email: "bare@example.com"}
	svc := NewAuthService(users, newFakeTokenRepo())

	_, err := svc.LoginOrRegister(context.Background(), dto.LoginRequest{Email: strPtr("bare@example.com")})
	require.Error(t, err)
	assert.Equal(t, "User with id 9 does not have a profile :(", apperror.Message(err))
}

func TestIssueToken(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := NewAuthService(users, tokens)
	ctx := context.Background()

	_, err := svc.LoginOrRegister(ctx, registrationRequest())
	require.NoError(t, err)

	key, err := svc.IssueToken(ctx, "mahesh@example.com", "Mahesh@123")
	require.NoError(t, err)
	assert.Equal(t, "token-for-user-1", key)
	assert.Equal(t, 1, tokens.minted)

	// Unknown email and wrong password read the same from outside.
	_, err = svc.IssueToken(ctx, "nobody@example.com", "Mahesh@123")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", apperror.Message(err))

	_, err = svc.IssueToken(ctx, "mahesh@example.com", "Wrong@123")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", apperror.Message(err))
}

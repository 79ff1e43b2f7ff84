package repository

import (
	"context"
	"errors"
	"strings"

	"cms-backend/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenRepository interface {
	GetOrCreate(ctx context.Context, userID uint) (*entity.AuthToken, error)
	FindByKey(ctx context.Context, key string) (*entity.AuthToken, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// GetOrCreate returns the user's existing token or mints a new one.
// Issuance is idempotent per user.
func (r *tokenRepository) GetOrCreate(ctx context.Context, userID uint) (*entity.AuthToken, error) {
	var token entity.AuthToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = entity.AuthToken{
		UserID: userID,
		Key:    newTokenKey(),
	}
	if err := r.db.WithContext(ctx).Create(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

func (r *tokenRepository) FindByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	var token entity.AuthToken
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

func newTokenKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

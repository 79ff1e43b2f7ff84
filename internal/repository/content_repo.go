package repository

import (
	"context"

	"cms-backend/internal/entity"
	"gorm.io/gorm"
)

// ContentQuery is the explicit query specification produced by the
// access-control layer. The repository translates it into SQL; the
// decision logic that builds it never touches the database.
type ContentQuery struct {
	// OwnerID restricts results to content owned by that user.
	OwnerID *uint
	// ContentID restricts results to a single record.
	ContentID *uint
	// Search adds a case-insensitive substring match over title, body,
	// summary and associated category titles.
	Search string
}

type ContentRepository interface {
	Create(ctx context.Context, content *entity.Content, categories []string) error
	Update(ctx context.Context, content *entity.Content, categories []string, replaceCategories bool) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*entity.Content, error)
	Count(ctx context.Context, q ContentQuery) (int64, error)
	FindAll(ctx context.Context, q ContentQuery, offset, limit int) ([]*entity.Content, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Create resolves category titles (get-or-create) and persists the
// content with its associations in one transaction.
func (r *contentRepository) Create(ctx context.Context, content *entity.Content, categories []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolved, err := resolveCategories(tx, categories)
		if err != nil {
			return err
		}

		content.Categories = resolved
		return tx.Create(content).Error
	})
}

// Update saves the content fields and, when replaceCategories is set,
// swaps the full association set for the resolved titles. A nil
// category list on the wire means "leave associations unchanged" and
// arrives here as replaceCategories=false.
func (r *contentRepository) Update(ctx context.Context, content *entity.Content, categories []string, replaceCategories bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "User").Save(content).Error; err != nil {
			return err
		}

		if !replaceCategories {
			return nil
		}

		resolved, err := resolveCategories(tx, categories)
		if err != nil {
			return err
		}

		if err := tx.Model(content).Association("Categories").Replace(&resolved); err != nil {
			return err
		}

		content.Categories = resolved
		return nil
	})
}

func (r *contentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Categories").Delete(&entity.Content{ID: id}).Error
}

func (r *contentRepository) FindByID(ctx context.Context, id uint) (*entity.Content, error) {
	var content entity.Content
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Categories").
		Where("id = ?", id).
		First(&content).Error; err != nil {
		return nil, err
	}

	return &content, nil
}

func (r *contentRepository) Count(ctx context.Context, q ContentQuery) (int64, error) {
	var total int64
	db := applyContentQuery(r.db.WithContext(ctx).Model(&entity.Content{}), q)
	if q.Search != "" {
		db = db.Distinct("contents.id")
	}
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (r *contentRepository) FindAll(ctx context.Context, q ContentQuery, offset, limit int) ([]*entity.Content, error) {
	var contents []*entity.Content
	db := applyContentQuery(r.db.WithContext(ctx).Model(&entity.Content{}), q)
	if q.Search != "" {
		// The category join can match one record several times.
		db = db.Distinct("contents.*")
	}

	if err := db.
		Preload("User").
		Preload("Categories").
		Order("contents.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&contents).Error; err != nil {
		return nil, err
	}

	return contents, nil
}

func applyContentQuery(db *gorm.DB, q ContentQuery) *gorm.DB {
	if q.OwnerID != nil {
		db = db.Where("contents.user_id = ?", *q.OwnerID)
	}

	if q.ContentID != nil {
		db = db.Where("contents.id = ?", *q.ContentID)
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.
			Joins("LEFT JOIN content_categories ON content_categories.content_id = contents.id").
			Joins("LEFT JOIN categories ON categories.id = content_categories.category_id").
			Where("contents.title ILIKE ? OR contents.body ILIKE ? OR contents.summary ILIKE ? OR categories.title ILIKE ?",
				pattern, pattern, pattern, pattern)
	}

	return db
}

func resolveCategories(tx *gorm.DB, titles []string) ([]entity.Category, error) {
	resolved := make([]entity.Category, 0, len(titles))
	for _, title := range titles {
		var category entity.Category
		if err := tx.Where(entity.Category{Title: title}).FirstOrCreate(&category).Error; err != nil {
			return nil, err
		}
		resolved = append(resolved, category)
	}

	return resolved, nil
}

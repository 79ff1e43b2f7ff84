package service

import (
	"context"
	"encoding/json"
	"errors"

	"cms-backend/internal/dto"
	"cms-backend/internal/entity"
	"cms-backend/internal/repository"
	"cms-backend/pkg/apperror"
	"cms-backend/pkg/pagination"
	"cms-backend/pkg/validation"
	"gorm.io/gorm"
)

type ContentService interface {
	List(ctx context.Context, caller *entity.User, filter dto.ContentFilter, page, pageSize int) ([]dto.ContentResponse, error)
	Create(ctx context.Context, caller *entity.User, req dto.CreateContentRequest) (*dto.ContentResponse, error)
	Update(ctx context.Context, caller *entity.User, req dto.UpdateContentRequest) (*dto.ContentResponse, error)
	Delete(ctx context.Context, caller *entity.User, id *uint) error
}

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

// List returns the page of content visible to the caller. A page past
// the end of the filtered set is an empty result, not an error.
func (s *contentService) List(ctx context.Context, caller *entity.User, filter dto.ContentFilter, page, pageSize int) ([]dto.ContentResponse, error) {
	q := BuildContentQuery(caller, filter)

	total, err := s.contentRepo.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	offset, limit, ok := pagination.Page(total, page, pageSize)
	if !ok {
		return []dto.ContentResponse{}, nil
	}

	contents, err := s.contentRepo.FindAll(ctx, q, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContentResponse, 0, len(contents))
	for _, content := range contents {
		responses = append(responses, buildContentResponse(content))
	}

	return responses, nil
}

func (s *contentService) Create(ctx context.Context, caller *entity.User, req dto.CreateContentRequest) (*dto.ContentResponse, error) {
	if caller.IsAdmin {
		return nil, apperror.New(apperror.ErrPermissionDenied, "admin cannot create content")
	}

	titles, err := validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	content := &entity.Content{
		UserID:  caller.ID,
		Title:   req.Title,
		Body:    req.Body,
		Summary: *req.Summary,
		Pdf:     *req.Pdf,
	}

	if err := validation.Struct(content); err != nil {
		return nil, err
	}

	if err := s.contentRepo.Create(ctx, content, titles); err != nil {
		return nil, err
	}

	content.User = *caller
	response := buildContentResponse(content)

	return &response, nil
}

func (s *contentService) Update(ctx context.Context, caller *entity.User, req dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	if req.ID == nil {
		return nil, apperror.New(apperror.ErrInvalidParams, "send id in post params")
	}

	var titles []string
	replaceCategories := false
	if req.Categories != nil {
		if err := json.Unmarshal([]byte(*req.Categories), &titles); err != nil {
			return nil, apperror.New(apperror.ErrInvalidParams, "json decode error in categories")
		}
		replaceCategories = true
	}

	content, err := s.findContent(ctx, *req.ID)
	if err != nil {
		return nil, err
	}

	if !CanMutateContent(caller, content) {
		return nil, apperror.New(apperror.ErrPermissionDenied, "only author or admin can edit content")
	}

	// Empty strings mean "keep the stored value".
	if req.Title != "" {
		content.Title = req.Title
	}
	if req.Body != "" {
		content.Body = req.Body
	}
	if req.Summary != "" {
		content.Summary = req.Summary
	}
	if req.Pdf != "" {
		content.Pdf = req.Pdf
	}

	if err := validation.Struct(content); err != nil {
		return nil, err
	}

	if err := s.contentRepo.Update(ctx, content, titles, replaceCategories); err != nil {
		return nil, err
	}

	response := buildContentResponse(content)

	return &response, nil
}

func (s *contentService) Delete(ctx context.Context, caller *entity.User, id *uint) error {
	if id == nil {
		return apperror.New(apperror.ErrInvalidParams, "send id in post params")
	}

	content, err := s.findContent(ctx, *id)
	if err != nil {
		return err
	}

	if !CanMutateContent(caller, content) {
		return apperror.New(apperror.ErrPermissionDenied, "only author or admin can delete content")
	}

	return s.contentRepo.Delete(ctx, content.ID)
}

func (s *contentService) findContent(ctx context.Context, id uint) (*entity.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.ErrNotFound, "Content with id %d does not exist :(", id)
		}
		return nil, err
	}

	return content, nil
}

// validateCreateRequest checks the create payload and returns the
// decoded category titles. The categories field is a JSON-array string
// and must resolve to at least one title.
func validateCreateRequest(req dto.CreateContentRequest) ([]string, error) {
	var titles []string
	if req.Categories != nil {
		if err := json.Unmarshal([]byte(*req.Categories), &titles); err != nil {
			return nil, apperror.New(apperror.ErrInvalidParams, "json decode error in categories")
		}
	}

	if req.Summary == nil {
		return nil, apperror.Newf(apperror.ErrInvalidParams, "Required param %s missing in params", "summary")
	}

	if req.Pdf == nil {
		return nil, apperror.Newf(apperror.ErrInvalidParams, "Required param %s missing in params", "pdf")
	}

	if req.Categories == nil || len(titles) == 0 {
		return nil, apperror.New(apperror.ErrValidation, "Content must belong to at least one category")
	}

	return titles, nil
}

func buildContentResponse(content *entity.Content) dto.ContentResponse {
	categories := make([]dto.CategoryResponse, 0, len(content.Categories))
	for _, category := range content.Categories {
		categories = append(categories, dto.CategoryResponse{
			ID:    category.ID,
			Title: category.Title,
		})
	}

	return dto.ContentResponse{
		ID: content.ID,
		User: dto.UserResponse{
			ID:        content.User.ID,
			FullName:  content.User.FullName(),
			Email:     content.User.Email,
			FirstName: content.User.FirstName,
			LastName:  content.User.LastName,
		},
		Title:      content.Title,
		Body:       content.Body,
		Summary:    content.Summary,
		Pdf:        content.Pdf,
		Categories: categories,
		CreatedAt:  content.CreatedAt,
		UpdatedAt:  content.UpdatedAt,
	}
}

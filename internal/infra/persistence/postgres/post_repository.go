package postgres

import (
	"context"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/domain/repository"
	"github.com/adiritzhakii/food-by-me/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post record.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	postM := fromPostDomain(post)
	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a single post by primary key.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPostDomain(&postM), nil
}

// FindAll lists posts, optionally filtered by owner, newest first.
func (repo *postRepository) FindAll(ctx context.Context, owner *uuid.UUID) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if owner != nil {
		query = query.Where("owner = ?", *owner)
	}

	var postModels []*model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Update overwrites the mutable fields of a post, including its like list.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
			"picture": post.Picture,
			"likes":   likesToJSON(post.Likes),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post by primary key.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	likes := make([]uuid.UUID, 0, len(data.Likes))
	for _, raw := range data.Likes {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		likes = append(likes, id)
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Owner:     data.Owner,
		Picture:   data.Picture,
		Likes:     likes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:      data.ID,
		Title:   data.Title,
		Content: data.Content,
		Owner:   data.Owner,
		Picture: data.Picture,
		Likes:   likesToJSON(data.Likes),
	}
}

func likesToJSON(likes []uuid.UUID) datatypes.JSONSlice[string] {
	raw := make([]string, 0, len(likes))
	for _, id := range likes {
		raw = append(raw, id.String())
	}

	return datatypes.NewJSONSlice(raw)
}

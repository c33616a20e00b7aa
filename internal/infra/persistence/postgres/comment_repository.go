package postgres

import (
	"context"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/domain/repository"
	"github.com/adiritzhakii/food-by-me/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment record.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	commentM := fromCommentDomain(comment)
	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByID retrieves a single comment by primary key.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCommentDomain(&commentM), nil
}

// FindAll lists comments, optionally filtered by post, oldest first.
func (repo *commentRepository) FindAll(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error) {
	query := repo.db.WithContext(ctx).Order("created_at ASC")
	if postID != nil {
		query = query.Where("post_id = ?", *postID)
	}

	var commentModels []*model.CommentModel
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// Delete removes a comment by primary key.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		PostID:    data.PostID,
		Owner:     data.Owner,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:      data.ID,
		PostID:  data.PostID,
		Owner:   data.Owner,
		Comment: data.Comment,
	}
}

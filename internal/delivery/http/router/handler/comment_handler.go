package handler

import (
	"log/slog"
	"net/http"

	"github.com/adiritzhakii/food-by-me/internal/delivery/http/middleware"
	"github.com/adiritzhakii/food-by-me/internal/delivery/http/response"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for the comment endpoints.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create stores a new comment on a post.
func (h *CommentHandler) Create(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessDenied)
	}

	var input usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	input.Owner = accountID
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, usecase.ToCommentOutput(comment), "Comment created successfully")
}

// List returns comments, optionally filtered with ?postId=<id>.
func (h *CommentHandler) List(c echo.Context) error {
	var postID *uuid.UUID
	if raw := c.QueryParam("postId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
		}
		postID = &id
	}

	comments, err := h.uc.List(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.ToCommentOutputs(comments), "")
}

// GetByID returns a single comment.
func (h *CommentHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment ID")
	}

	comment, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.ToCommentOutput(comment), "")
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Comment deleted"}, "")
}

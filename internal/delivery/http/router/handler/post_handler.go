package handler

import (
	"log/slog"
	"net/http"

	"github.com/adiritzhakii/food-by-me/internal/delivery/http/middleware"
	"github.com/adiritzhakii/food-by-me/internal/delivery/http/response"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"
	"github.com/adiritzhakii/food-by-me/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for the feed endpoints.
type PostHandler struct {
	uc         usecase.PostUsecase
	imageStore service.ImageStore
	logger     *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, imageStore service.ImageStore, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:         uc,
		imageStore: imageStore,
		logger:     logger,
	}
}

// Create stores a new post. The body is multipart: text fields plus an
// optional 'image' part.
func (h *PostHandler) Create(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessDenied)
	}

	input := usecase.CreatePostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		Owner:   accountID,
	}

	imageName, err := saveUploadedImage(c, h.imageStore)
	if err != nil {
		return errors.WithStack(err)
	}
	input.ImageName = imageName

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, usecase.ToPostOutput(post), "Post created successfully")
}

// GetAll lists posts, optionally filtered with ?owner=<id>.
func (h *PostHandler) GetAll(c echo.Context) error {
	var owner *uuid.UUID
	if raw := c.QueryParam("owner"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid owner ID")
		}
		owner = &id
	}

	posts, err := h.uc.GetAll(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.ToPostOutputs(posts), "")
}

// GetByID returns a single post.
func (h *PostHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	post, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.ToPostOutput(post), "")
}

// Update overwrites a post's mutable fields, multipart like Create.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	input := usecase.UpdatePostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}

	imageName, err := saveUploadedImage(c, h.imageStore)
	if err != nil {
		return errors.WithStack(err)
	}
	input.ImageName = imageName

	post, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.ToPostOutput(post), "Post updated successfully")
}

// Delete removes a post.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"}, "")
}

// ToggleLike flips the caller's like on a post.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessDenied)
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post ID")
	}

	post, err := h.uc.ToggleLike(c.Request().Context(), postID, accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.ToPostOutput(post), "")
}

// Generate produces an AI post draft from a prompt without saving it.
func (h *PostHandler) Generate(c echo.Context) error {
	var input usecase.GeneratePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prompt input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	draft, err := h.uc.Generate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, draft, "")
}

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

// ProfileHandler holds dependencies for the profile endpoints.
type ProfileHandler struct {
	uc         usecase.ProfileUsecase
	imageStore service.ImageStore
	logger     *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, imageStore service.ImageStore, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:         uc,
		imageStore: imageStore,
		logger:     logger,
	}
}

// GetProfile returns the caller's own profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessDenied)
	}

	output, err := h.uc.Get(c.Request().Context(), middleware.Provider(c), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// EditProfile updates the caller's display name and avatar.
func (h *ProfileHandler) EditProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessDenied)
	}

	var input usecase.EditProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Edit(c.Request().Context(), middleware.Provider(c), accountID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Profile updated"}, "")
}

// SetAvatar stores the uploaded image as the caller's avatar.
func (h *ProfileHandler) SetAvatar(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessDenied)
	}

	imageName, err := saveUploadedImage(c, h.imageStore)
	if err != nil {
		return errors.WithStack(err)
	}
	if imageName == "" {
		return response.BindingError(c, "INVALID_INPUT", "Avatar image is required")
	}

	avatarURL, err := h.uc.SetAvatar(c.Request().Context(), middleware.Provider(c), accountID, imageName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"avatar": avatarURL}, "")
}

// GetUserByID returns another account's public profile, OAuth variant first.
func (h *ProfileHandler) GetUserByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user ID")
	}

	output, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// saveUploadedImage stores the multipart 'image' part, if present, and
// returns the stored name. No file at all is not an error here.
func saveUploadedImage(c echo.Context, store service.ImageStore) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Missing part or non-multipart body both mean "no image sent".
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded image")
	}
	defer src.Close()

	name, err := store.Save(c.Request().Context(), src)
	if err != nil {
		return "", errors.Wrap(err, "failed to store uploaded image")
	}

	return name, nil
}

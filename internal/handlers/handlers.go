// Package handlers adapts HTTP requests to the services: multipart and
// JSON parsing, id and pagination validation, frameworkIds
// normalization, and error-to-status mapping.
package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
	"github.com/yoones-dev/portfolio-api/internal/models"
	"github.com/yoones-dev/portfolio-api/internal/services"
	"github.com/yoones-dev/portfolio-api/internal/storage"
	"github.com/yoones-dev/portfolio-api/internal/types"
)

type Handler struct {
	Users      *services.UserService
	Frameworks *services.FrameworkService
	Projects   *services.ProjectService
	Messages   *services.MessageService
	Store      storage.Store
}

func New(users *services.UserService, frameworks *services.FrameworkService, projects *services.ProjectService, messages *services.MessageService, store storage.Store) *Handler {
	return &Handler{
		Users:      users,
		Frameworks: frameworks,
		Projects:   projects,
		Messages:   messages,
		Store:      store,
	}
}

func respondError(ctx *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.Unknown {
		log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("unhandled error")
	}

	status, message := apperr.StatusMessage(err)
	ctx.JSON(status, types.Response{
		StatusCode: status,
		Message:    message,
	})
}

// parseID validates a path id before any lookup happens.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.New(apperr.InvalidInput, "invalid id")
	}
	return uint(id), nil
}

func parsePositiveInt(raw string, fallback int, name string) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, apperr.New(apperr.InvalidInput, fmt.Sprintf("%s must be a positive integer", name))
	}
	return value, nil
}

// parseFrameworkIDs normalizes the frameworkIds field, which clients send
// as a JSON array, a comma-separated string, repeated form values, or a
// single value.
func parseFrameworkIDs(values []string) ([]uint, error) {
	var raw []string

	switch {
	case len(values) == 0:
		return nil, nil
	case len(values) == 1:
		value := strings.TrimSpace(values[0])
		if value == "" {
			return nil, nil
		}
		if strings.HasPrefix(value, "[") {
			var parsed []string
			if err := json.Unmarshal([]byte(value), &parsed); err != nil {
				return nil, apperr.New(apperr.InvalidInput, "frameworkIds must be a JSON array")
			}
			raw = parsed
		} else {
			raw = strings.Split(value, ",")
		}
	default:
		raw = values
	}

	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		id, err := strconv.ParseUint(strings.TrimSpace(item), 10, 32)
		if err != nil || id == 0 {
			return nil, apperr.New(apperr.InvalidInput, "invalid framework id")
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}

// formAsset pulls the multipart upload out of the request and enforces
// the size limit before anything touches the asset store.
func formAsset(ctx *gin.Context, required bool) (*services.UploadedAsset, error) {
	fileHeader, err := ctx.FormFile("assetFile")

	if err != nil {
		if required {
			return nil, apperr.New(apperr.InvalidInput, "assetFile is required")
		}
		return nil, nil
	}

	if fileHeader.Size > types.MaxAssetSize {
		return nil, apperr.New(apperr.InvalidInput, "file size is too large (max 5MB)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "failed to read assetFile", err)
	}

	return &services.UploadedAsset{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	}, nil
}

func (h *Handler) frameworkResponse(framework models.Framework) types.FrameworkResponse {
	return types.FrameworkResponse{
		ID:        framework.ID,
		Name:      framework.Name,
		AssetURL:  h.Store.PublicURL(framework.AssetRef),
		CreatedAt: framework.CreatedAt,
	}
}

func (h *Handler) projectResponse(project models.Project) types.ProjectResponse {
	frameworks := make([]types.FrameworkResponse, 0, len(project.Frameworks))
	for _, framework := range project.Frameworks {
		frameworks = append(frameworks, h.frameworkResponse(framework))
	}

	return types.ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Link:        project.Link,
		AssetURL:    h.Store.PublicURL(project.AssetRef),
		CreatedAt:   project.CreatedAt,
		Frameworks:  frameworks,
	}
}

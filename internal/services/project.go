package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
	"github.com/yoones-dev/portfolio-api/internal/models"
	"github.com/yoones-dev/portfolio-api/internal/storage"
)

const (
	DefaultPage  = 1
	DefaultLimit = 6
)

type ProjectService struct {
	db    *gorm.DB
	store storage.Store
}

func NewProjectService(db *gorm.DB, store storage.Store) *ProjectService {
	return &ProjectService{db: db, store: store}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	Link         string
	FrameworkIDs []uint
	Asset        *UploadedAsset
}

type UpdateProjectInput struct {
	Title       string
	Description string
	Link        string
	// FrameworkIDs non-empty replaces the full association set inside the
	// update transaction. Empty or nil leaves associations untouched.
	FrameworkIDs []uint
	Asset        *UploadedAsset
}

// Create uploads the cover first, then inserts the project row and one
// association row per framework id in a single transaction. Duplicate
// ids in the input collide on the composite key and surface as a
// conflict; they are never deduplicated here.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	var existing models.Project

	err := s.db.WithContext(ctx).Where("title = ?", in.Title).First(&existing).Error

	if err == nil {
		return nil, apperr.New(apperr.Conflict, "project already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	locator, err := s.store.Put(ctx, storage.GenerateName(in.Asset.Filename), in.Asset.Content, in.Asset.Size, in.Asset.ContentType)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to store asset", err)
	}

	project := models.Project{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		AssetRef:    locator,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.New(apperr.Conflict, "project already exists")
			}
			return err
		}
		return createAssociations(tx, project.ID, in.FrameworkIDs)
	})

	if err != nil {
		// The transaction rolled the relational writes back; the uploaded
		// object stays behind for out-of-band reconciliation.
		log.Warn().Str("locator", locator).Msg("orphaned asset: project transaction failed after upload")
		return nil, err
	}

	if err := s.db.WithContext(ctx).Preload("Frameworks").First(&project, project.ID).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// List returns one page of projects, newest first, with their frameworks
// eager-loaded.
func (s *ProjectService) List(ctx context.Context, page, limit int) ([]models.Project, error) {
	if page < 1 || limit < 1 {
		return nil, apperr.New(apperr.InvalidInput, "page and limit must be positive integers")
	}

	var projects []models.Project

	err := s.db.WithContext(ctx).
		Preload("Frameworks").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&projects).Error

	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Update applies a partial field update, optionally swaps the cover
// asset, and - when framework ids are supplied - replaces the whole
// association set inside the same transaction as the field update.
func (s *ProjectService) Update(ctx context.Context, id uint, in UpdateProjectInput) error {
	var project models.Project

	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "project not found")
		}
		return err
	}

	updates := make(map[string]interface{})

	if in.Asset != nil {
		if err := s.store.Remove(ctx, project.AssetRef); err != nil {
			log.Warn().Str("locator", project.AssetRef).Err(err).Msg("failed to remove replaced asset")
		}

		locator, err := s.store.Put(ctx, storage.GenerateName(in.Asset.Filename), in.Asset.Content, in.Asset.Size, in.Asset.ContentType)
		if err != nil {
			return apperr.Wrap(apperr.Storage, "failed to store asset", err)
		}

		updates["asset_ref"] = locator
	}

	if in.Title != "" {
		updates["title"] = in.Title
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.Link != "" {
		updates["link"] = in.Link
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&project).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperr.New(apperr.Conflict, "project already exists")
				}
				return err
			}
		}

		if len(in.FrameworkIDs) > 0 {
			if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectFramework{}).Error; err != nil {
				return err
			}
			return createAssociations(tx, project.ID, in.FrameworkIDs)
		}

		return nil
	})
}

// Delete removes the stored cover (missing objects are surfaced), then
// deletes the association rows and the project row in one transaction so
// no dangling associations survive.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	var project models.Project

	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "project not found")
		}
		return err
	}

	if err := s.store.Remove(ctx, project.AssetRef); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.New(apperr.NotFound, "asset not found")
		}
		return apperr.Wrap(apperr.Storage, "failed to remove asset", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectFramework{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

// Disassociate removes a single project-framework link.
func (s *ProjectService) Disassociate(ctx context.Context, projectID, frameworkID uint) error {
	var project models.Project

	if err := s.db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "project not found")
		}
		return err
	}

	var framework models.Framework

	if err := s.db.WithContext(ctx).First(&framework, frameworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "framework not found")
		}
		return err
	}

	var association models.ProjectFramework

	err := s.db.WithContext(ctx).
		Where("project_id = ? AND framework_id = ?", projectID, frameworkID).
		First(&association).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "association not found")
		}
		return err
	}

	return s.db.WithContext(ctx).
		Where("project_id = ? AND framework_id = ?", projectID, frameworkID).
		Delete(&models.ProjectFramework{}).Error
}

// createAssociations verifies the referenced frameworks exist, then
// inserts the rows one by one. Duplicates in ids are inserted as-is and
// rejected by the composite primary key.
func createAssociations(tx *gorm.DB, projectID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	distinct := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}

	var count int64
	if err := tx.Model(&models.Framework{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(distinct)) {
		return apperr.New(apperr.NotFound, "framework not found")
	}

	for _, id := range ids {
		association := models.ProjectFramework{
			ProjectID:   projectID,
			FrameworkID: id,
		}
		if err := tx.Create(&association).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.New(apperr.Conflict, "duplicate framework association")
			}
			return err
		}
	}

	return nil
}

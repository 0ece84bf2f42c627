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

type FrameworkService struct {
	db    *gorm.DB
	store storage.Store
}

func NewFrameworkService(db *gorm.DB, store storage.Store) *FrameworkService {
	return &FrameworkService{db: db, store: store}
}

// Create stores the icon first and inserts the row second, so a failure
// in between leaves an orphaned object instead of a record pointing at
// nothing. The orphan is logged as a cleanup obligation.
func (s *FrameworkService) Create(ctx context.Context, name string, asset *UploadedAsset) (*models.Framework, error) {
	var existing models.Framework

	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error

	if err == nil {
		return nil, apperr.New(apperr.Conflict, "framework already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	locator, err := s.store.Put(ctx, storage.GenerateName(asset.Filename), asset.Content, asset.Size, asset.ContentType)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to store asset", err)
	}

	framework := models.Framework{
		Name:     name,
		AssetRef: locator,
	}

	if err := s.db.WithContext(ctx).Create(&framework).Error; err != nil {
		log.Warn().Str("locator", locator).Msg("orphaned asset: framework insert failed after upload")

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Conflict, "framework already exists")
		}
		return nil, err
	}

	return &framework, nil
}

func (s *FrameworkService) List(ctx context.Context) ([]models.Framework, error) {
	var frameworks []models.Framework

	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&frameworks).Error; err != nil {
		return nil, err
	}

	return frameworks, nil
}

// Update applies a partial field update and optionally replaces the
// stored icon. Failure to remove the old object is logged, not fatal.
func (s *FrameworkService) Update(ctx context.Context, id uint, name string, asset *UploadedAsset) (*models.Framework, error) {
	var framework models.Framework

	if err := s.db.WithContext(ctx).First(&framework, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "framework not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if asset != nil {
		if err := s.store.Remove(ctx, framework.AssetRef); err != nil {
			log.Warn().Str("locator", framework.AssetRef).Err(err).Msg("failed to remove replaced asset")
		}

		locator, err := s.store.Put(ctx, storage.GenerateName(asset.Filename), asset.Content, asset.Size, asset.ContentType)
		if err != nil {
			return nil, apperr.Wrap(apperr.Storage, "failed to store asset", err)
		}

		updates["asset_ref"] = locator
	}

	if name != "" {
		updates["name"] = name
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&framework).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperr.New(apperr.Conflict, "framework already exists")
			}
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).First(&framework, framework.ID).Error; err != nil {
		return nil, err
	}

	return &framework, nil
}

// Delete removes the stored icon before the row. A missing stored object
// is surfaced to the caller as not found.
func (s *FrameworkService) Delete(ctx context.Context, id uint) error {
	var framework models.Framework

	if err := s.db.WithContext(ctx).First(&framework, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "framework not found")
		}
		return err
	}

	if err := s.store.Remove(ctx, framework.AssetRef); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.New(apperr.NotFound, "asset not found")
		}
		return apperr.Wrap(apperr.Storage, "failed to remove asset", err)
	}

	return s.db.WithContext(ctx).Delete(&framework).Error
}

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
	"github.com/yoones-dev/portfolio-api/internal/models"
)

func seedFramework(t *testing.T, database *gorm.DB, name string) models.Framework {
	t.Helper()

	framework := models.Framework{Name: name, AssetRef: name + ".png"}
	require.NoError(t, database.Create(&framework).Error)
	return framework
}

func associations(t *testing.T, database *gorm.DB, projectID uint) []uint {
	t.Helper()

	var rows []models.ProjectFramework
	require.NoError(t, database.Where("project_id = ?", projectID).Find(&rows).Error)

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.FrameworkID)
	}
	return ids
}

func TestProjectCreate(t *testing.T) {
	database := newTestDB(t)
	store, dir := newTestStore(t)
	svc := NewProjectService(database, store)

	react := seedFramework(t, database, "React")
	vue := seedFramework(t, database, "Vue")

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "My personal site",
		Link:         "https://example.com",
		FrameworkIDs: []uint{react.ID, vue.ID},
		Asset:        testAsset("cover"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", project.Title)
	assert.Len(t, project.Frameworks, 2)
	assert.Len(t, storedObjects(t, dir), 1)
	assert.ElementsMatch(t, []uint{react.ID, vue.ID}, associations(t, database, project.ID))
}

func TestProjectCreateConflictSkipsUpload(t *testing.T) {
	database := newTestDB(t)
	store, dir := newTestStore(t)
	svc := NewProjectService(database, store)

	react := seedFramework(t, database, "React")

	_, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "one",
		Link:         "https://example.com",
		FrameworkIDs: []uint{react.ID},
		Asset:        testAsset("cover1"),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "two",
		Link:         "https://example.com",
		FrameworkIDs: []uint{react.ID},
		Asset:        testAsset("cover2"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Len(t, storedObjects(t, dir), 1)
}

func TestProjectCreateDuplicateAssociationRollsBack(t *testing.T) {
	database := newTestDB(t)
	store, dir := newTestStore(t)
	svc := NewProjectService(database, store)

	react := seedFramework(t, database, "React")

	_, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "dup ids",
		Link:         "https://example.com",
		FrameworkIDs: []uint{react.ID, react.ID},
		Asset:        testAsset("cover"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// Relational writes rolled back entirely.
	var count int64
	require.NoError(t, database.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)

	// The upload happened before the transaction and stays behind as an
	// orphan for out-of-band cleanup.
	assert.Len(t, storedObjects(t, dir), 1)
}

func TestProjectCreateUnknownFramework(t *testing.T) {
	database := newTestDB(t)
	store, _ := newTestStore(t)
	svc := NewProjectService(database, store)

	_, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "missing framework",
		Link:         "https://example.com",
		FrameworkIDs: []uint{99},
		Asset:        testAsset("cover"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	var count int64
	require.NoError(t, database.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProjectListPagination(t *testing.T) {
	database := newTestDB(t)
	store, _ := newTestStore(t)
	svc := NewProjectService(database, store)

	react := seedFramework(t, database, "React")

	now := time.Now().UTC()
	var ids []uint

	for i := 1; i <= 5; i++ {
		project, err := svc.Create(context.Background(), CreateProjectInput{
			Title:        fmt.Sprintf("Project %d", i),
			Description:  "seeded",
			Link:         "https://example.com",
			FrameworkIDs: []uint{react.ID},
			Asset:        testAsset(fmt.Sprintf("cover%d", i)),
		})
		require.NoError(t, err)
		setCreatedAt(t, database, &models.Project{}, project.ID, now.Add(time.Duration(i)*time.Minute))
		ids = append(ids, project.ID)
	}

	// Descending creation order is 5,4,3,2,1; page 2 with limit 2 is
	// items 3 and 4 of that ordering.
	page, err := svc.List(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	// Frameworks are eager-loaded.
	require.Len(t, page[0].Frameworks, 1)
	assert.Equal(t, react.ID, page[0].Frameworks[0].ID)
}

func TestProjectListRejectsNonPositive(t *testing.T) {
	database := newTestDB(t)
	store, _ := newTestStore(t)
	svc := NewProjectService(database, store)

	_, err := svc.List(context.Background(), 0, 6)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = svc.List(context.Background(), 1, -1)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestProjectUpdateReplacesAssociations(t *testing.T) {
	database := newTestDB(t)
	store, _ := newTestStore(t)
	svc := NewProjectService(database, store)

	a := seedFramework(t, database, "A")
	b := seedFramework(t, database, "B")
	c := seedFramework(t, database, "C")

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "assoc",
		Link:         "https://example.com",
		FrameworkIDs: []uint{a.ID, b.ID},
		Asset:        testAsset("cover"),
	})
	require.NoError(t, err)

	err = svc.Update(context.Background(), project.ID, UpdateProjectInput{
		FrameworkIDs: []uint{b.ID, c.ID},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint{b.ID, c.ID}, associations(t, database, project.ID))
}

func TestProjectUpdateOmittedAssociationsUntouched(t *testing.T) {
	database := newTestDB(t)
	store, _ := newTestStore(t)
	svc := NewProjectService(database, store)

	a := seedFramework(t, database, "A")

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "before",
		Link:         "https://example.com",
		FrameworkIDs: []uint{a.ID},
		Asset:        testAsset("cover"),
	})
	require.NoError(t, err)

	err = svc.Update(context.Background(), project.ID, UpdateProjectInput{
		Description: "after",
	})
	require.NoError(t, err)

	var reloaded models.Project
	require.NoError(t, database.First(&reloaded, project.ID).Error)
	assert.Equal(t, "after", reloaded.Description)
	assert.Equal(t, "Portfolio", reloaded.Title)
	assert.ElementsMatch(t, []uint{a.ID}, associations(t, database, project.ID))
}

func TestProjectUpdateNotFoundLeavesStoresUntouched(t *testing.T) {
	database := newTestDB(t)
	store, dir := newTestStore(t)
	svc := NewProjectService(database, store)

	err := svc.Update(context.Background(), 42, UpdateProjectInput{
		Title: "nope",
		Asset: testAsset("cover"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Empty(t, storedObjects(t, dir))
}

func TestProjectUpdateReplacesAsset(t *testing.T) {
	database := newTestDB(t)
	store, dir := newTestStore(t)
	svc := NewProjectService(database, store)

	a := seedFramework(t, database, "A")

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "asset swap",
		Link:         "https://example.com",
		FrameworkIDs: []uint{a.ID},
		Asset:        testAsset("old"),
	})
	require.NoError(t, err)

	err = svc.Update(context.Background(), project.ID, UpdateProjectInput{
		Asset: testAsset("new"),
	})
	require.NoError(t, err)

	var reloaded models.Project
	require.NoError(t, database.First(&reloaded, project.ID).Error)
	assert.NotEqual(t, project.AssetRef, reloaded.AssetRef)
	assert.Len(t, storedObjects(t, dir), 1)
}

func TestProjectDelete(t *testing.T) {
	database := newTestDB(t)
	store, dir := newTestStore(t)
	svc := NewProjectService(database, store)

	a := seedFramework(t, database, "A")

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "to delete",
		Link:         "https://example.com",
		FrameworkIDs: []uint{a.ID},
		Asset:        testAsset("cover"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), project.ID))

	assert.Empty(t, storedObjects(t, dir))
	assert.Empty(t, associations(t, database, project.ID))

	err = database.First(&models.Project{}, project.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(context.Background(), project.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestProjectDisassociate(t *testing.T) {
	database := newTestDB(t)
	store, _ := newTestStore(t)
	svc := NewProjectService(database, store)

	a := seedFramework(t, database, "A")
	b := seedFramework(t, database, "B")

	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:        "Portfolio",
		Description:  "assoc",
		Link:         "https://example.com",
		FrameworkIDs: []uint{a.ID, b.ID},
		Asset:        testAsset("cover"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Disassociate(context.Background(), project.ID, a.ID))
	assert.ElementsMatch(t, []uint{b.ID}, associations(t, database, project.ID))

	// Same pair again: the association row is gone.
	err = svc.Disassociate(context.Background(), project.ID, a.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	err = svc.Disassociate(context.Background(), 99, b.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	err = svc.Disassociate(context.Background(), project.ID, 99)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

package postgres

import (
	"context"
	"testing"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{
	"id", "name", "title", "email", "location", "bio",
	"og_title", "og_description", "og_image_url", "created_at", "updated_at",
}

func TestProfileRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "portfolio_profile" ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(profileColumns))

	profile, err := repo.Get(context.Background())

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_Save(t *testing.T) {
	t.Run("creates the first row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)
		profile := &entity.Profile{Name: "Ada", Title: "Engineer", Email: "ada@example.com"}

		mock.ExpectQuery(`SELECT \* FROM "portfolio_profile"`).
			WillReturnRows(sqlmock.NewRows(profileColumns))
		mock.ExpectExec(`INSERT INTO "portfolio_profile"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Save(context.Background(), profile))
		assert.NotEqual(t, uuid.Nil, profile.ID)
	})

	t.Run("overwrites the existing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)
		existingID := uuid.New()
		createdAt := time.Now().Add(-24 * time.Hour)
		profile := &entity.Profile{Name: "Ada Lovelace", Title: "Engineer"}

		mock.ExpectQuery(`SELECT \* FROM "portfolio_profile"`).
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow(existingID, "Ada", "Engineer", "", "", "", "", "", "", createdAt, createdAt))
		mock.ExpectExec(`UPDATE "portfolio_profile" SET .* WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Save(context.Background(), profile))
		assert.Equal(t, existingID, profile.ID)
		assert.Equal(t, createdAt, profile.CreatedAt)
	})
}

func TestExperienceRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExperienceRepository(db)
	newer, older := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "experiences" ORDER BY created_at DESC,id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company", "period", "description", "created_at", "updated_at"}).
			AddRow(newer, "Acme", "2023 - present", "", now, now).
			AddRow(older, "Initech", "2019 - 2023", "", now.Add(-time.Hour), now))

	experiences, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, experiences, 2)
	assert.Equal(t, newer, experiences[0].ID)
	assert.Equal(t, "Initech", experiences[1].Company)
}

func TestExperienceRepository_UpdateAndDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExperienceRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "experiences"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "experiences" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Experience{ID: id, Company: "Acme"})
	assert.ErrorIs(t, err, repository.ErrExperienceNotFound)

	err = repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrExperienceNotFound)
}

func TestExperienceRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExperienceRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "experiences"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSocialLinkRepository_List_OrderedByLabel(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSocialLinkRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "social_links" ORDER BY label ASC,id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "href", "created_at"}).
			AddRow(uuid.New(), "GitHub", "https://github.com/ada", time.Now()).
			AddRow(uuid.New(), "LinkedIn", "https://linkedin.com/in/ada", time.Now()))

	links, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "GitHub", links[0].Label)
}

func TestSocialLinkRepository_ReplaceAll(t *testing.T) {
	t.Run("clears and inserts", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSocialLinkRepository(db)
		links := []*entity.SocialLink{
			{Label: "GitHub", Href: "https://github.com/ada"},
			{Label: "Email", Href: "mailto:ada@example.com"},
		}

		mock.ExpectExec(`DELETE FROM "social_links"`).
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(`INSERT INTO "social_links"`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, repo.ReplaceAll(context.Background(), links))
		for _, link := range links {
			assert.NotEqual(t, uuid.Nil, link.ID)
		}
	})

	t.Run("empty input only clears", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSocialLinkRepository(db)

		mock.ExpectExec(`DELETE FROM "social_links"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.ReplaceAll(context.Background(), nil))
	})
}

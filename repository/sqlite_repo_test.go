package repository

// Gerçek SQLite üzerinde repository testleri.
// Her test t.TempDir() içinde taze bir DB açar — migration'lar dahil
// tam yol test edilir (schema, UNIQUE index'ler, RETURNING).

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/emlakkit/database"
	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedTestAdmin(t *testing.T, repo AdminRepository) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		Email:        "admin@emlakkit.app",
		PasswordHash: "$2a$12$fakehashfortest",
		DisplayName:  "Test Admin",
	}
	require.NoError(t, repo.Create(context.Background(), admin))
	return admin
}

func TestSQLiteAdminRepo_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteAdminRepo(db.Conn)
	ctx := context.Background()

	admin := seedTestAdmin(t, repo)
	require.NotEmpty(t, admin.ID)
	assert.False(t, admin.CreatedAt.IsZero(), "RETURNING created_at doldurmalı")

	byID, err := repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, byID.Email)
	assert.Equal(t, "$2a$12$fakehashfortest", byID.PasswordHash)

	byEmail, err := repo.GetByEmail(ctx, "admin@emlakkit.app")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byEmail.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteAdminRepo_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteAdminRepo(db.Conn)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@emlakkit.app")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// UNIQUE index, aynı email'i ikinci kez reddetmeli.
func TestSQLiteAdminRepo_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteAdminRepo(db.Conn)

	seedTestAdmin(t, repo)

	err := repo.Create(context.Background(), &models.Admin{
		Email:        "admin@emlakkit.app",
		PasswordHash: "x",
		DisplayName:  "Duplicate",
	})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestSQLitePostRepo_CRUD(t *testing.T) {
	db := newTestDB(t)
	adminRepo := NewSQLiteAdminRepo(db.Conn)
	postRepo := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	admin := seedTestAdmin(t, adminRepo)

	excerpt := "Kısa özet"
	now := time.Now().UTC()
	post := &models.Post{
		Slug:        "konut-kredisi-rehberi",
		Title:       "Konut Kredisi Rehberi",
		Excerpt:     &excerpt,
		Content:     "Uzun içerik...",
		AuthorID:    admin.ID,
		Published:   true,
		PublishedAt: &now,
	}
	require.NoError(t, postRepo.Create(ctx, post))
	require.NotEmpty(t, post.ID)

	// Slug ile oku
	got, err := postRepo.GetBySlug(ctx, "konut-kredisi-rehberi")
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	require.NotNil(t, got.Excerpt)
	assert.Equal(t, "Kısa özet", *got.Excerpt)
	assert.Nil(t, got.CoverImageURL)
	require.NotNil(t, got.PublishedAt)

	// Güncelle
	got.Title = "Güncel Başlık"
	got.Published = false
	require.NoError(t, postRepo.Update(ctx, got))

	updated, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Güncel Başlık", updated.Title)
	assert.False(t, updated.Published)

	// Sil
	require.NoError(t, postRepo.Delete(ctx, post.ID))
	_, err = postRepo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSQLitePostRepo_ListPublishedFilter(t *testing.T) {
	db := newTestDB(t)
	adminRepo := NewSQLiteAdminRepo(db.Conn)
	postRepo := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	admin := seedTestAdmin(t, adminRepo)

	older := time.Now().UTC().Add(-2 * time.Hour)
	newer := time.Now().UTC()

	for _, p := range []*models.Post{
		{Slug: "eski-yazi", Title: "Eski", Content: "x", AuthorID: admin.ID, Published: true, PublishedAt: &older},
		{Slug: "yeni-yazi", Title: "Yeni", Content: "x", AuthorID: admin.ID, Published: true, PublishedAt: &newer},
		{Slug: "taslak", Title: "Taslak", Content: "x", AuthorID: admin.ID, Published: false},
	} {
		require.NoError(t, postRepo.Create(ctx, p))
	}

	published, err := postRepo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, published, 2)
	// Yeniden eskiye sıralı
	assert.Equal(t, "yeni-yazi", published[0].Slug)
	assert.Equal(t, "eski-yazi", published[1].Slug)

	all, err := postRepo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSQLitePostRepo_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	adminRepo := NewSQLiteAdminRepo(db.Conn)
	postRepo := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	admin := seedTestAdmin(t, adminRepo)

	first := &models.Post{Slug: "ayni-slug", Title: "Bir", Content: "x", AuthorID: admin.ID}
	require.NoError(t, postRepo.Create(ctx, first))

	second := &models.Post{Slug: "ayni-slug", Title: "İki", Content: "x", AuthorID: admin.ID}
	err := postRepo.Create(ctx, second)
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestSQLitePostRepo_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewSQLitePostRepo(db.Conn)

	err := postRepo.Update(context.Background(), &models.Post{ID: "no-such-id", Slug: "s", Title: "t", Content: "c"})
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	err = postRepo.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// ON DELETE CASCADE: admin silinirse yazıları da gitmeli (FK pragma açık).
func TestSQLitePostRepo_AuthorCascade(t *testing.T) {
	db := newTestDB(t)
	adminRepo := NewSQLiteAdminRepo(db.Conn)
	postRepo := NewSQLitePostRepo(db.Conn)
	ctx := context.Background()

	admin := seedTestAdmin(t, adminRepo)
	post := &models.Post{Slug: "cascade-testi", Title: "Cascade", Content: "x", AuthorID: admin.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	_, err := db.Conn.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, admin.ID)
	require.NoError(t, err)

	_, err = postRepo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/emlakkit/database"
	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
)

// sqlitePostRepo, PostRepository interface'inin SQLite implementasyonu.
type sqlitePostRepo struct {
	db database.TxQuerier
}

// NewSQLitePostRepo, constructor.
func NewSQLitePostRepo(db database.TxQuerier) PostRepository {
	return &sqlitePostRepo{db: db}
}

func (r *sqlitePostRepo) Create(ctx context.Context, post *models.Post) error {
	post.ID = uuid.NewString()

	query := `
		INSERT INTO posts (id, slug, title, excerpt, content, cover_image_url, author_id, published, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID,
		post.Slug,
		post.Title,
		post.Excerpt,
		post.Content,
		post.CoverImageURL,
		post.AuthorID,
		post.Published,
		post.PublishedAt,
	).Scan(&post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug already in use", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *sqlitePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, slug, title, excerpt, content, cover_image_url, author_id, published, published_at, created_at, updated_at
		FROM posts WHERE id = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "id")
}

func (r *sqlitePostRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `
		SELECT id, slug, title, excerpt, content, cover_image_url, author_id, published, published_at, created_at, updated_at
		FROM posts WHERE slug = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, slug), "slug")
}

func (r *sqlitePostRepo) List(ctx context.Context, onlyPublished bool) ([]models.Post, error) {
	query := `
		SELECT id, slug, title, excerpt, content, cover_image_url, author_id, published, published_at, created_at, updated_at
		FROM posts`
	if onlyPublished {
		query += ` WHERE published = 1 ORDER BY published_at DESC`
	} else {
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close() // rows'u kapatmayı ASLA unutma — aksi halde bağlantı sızar (leak)

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.CoverImageURL,
			&p.AuthorID, &p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

func (r *sqlitePostRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET slug = ?, title = ?, excerpt = ?, content = ?, cover_image_url = ?,
		    published = ?, published_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		post.Slug, post.Title, post.Excerpt, post.Content, post.CoverImageURL,
		post.Published, post.PublishedAt, post.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug already in use", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePostRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// scanOne, tek satırlık post sorgusunu scan eder — GetByID/GetBySlug ortak kodu.
func (r *sqlitePostRepo) scanOne(row *sql.Row, by string) (*models.Post, error) {
	p := &models.Post{}
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.CoverImageURL,
		&p.AuthorID, &p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by %s: %w", by, err)
	}

	return p, nil
}

package repository

import (
	"context"

	"github.com/akinalp/emlakkit/models"
)

// PostRepository, blog yazıları için veritabanı interface'i.
//
// Public taraf sadece published yazıları görür (onlyPublished=true),
// admin CMS hepsini görür. Slug UNIQUE'tir — uniqueness store tarafından
// enforce edilir, service çakışmada suffix ekleyerek yeniden dener.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, onlyPublished bool) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

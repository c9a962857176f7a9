// Bu dosya — BlogService: blog yazılarının iş kuralları.
//
// Slug üretimi, yayına alma/yayından kaldırma geçişleri ve public liste
// cache'i burada yaşar. Handler sadece parse eder ve çağırır.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/pkg/cache"
	"github.com/akinalp/emlakkit/repository"
)

// publishedCacheKey, public liste cache'inin tek anahtarı.
const publishedCacheKey = "published"

// BlogService interface'i — dışarıya açık API.
type BlogService interface {
	// Create, yeni yazı oluşturur. authorID auth middleware'dan gelir.
	Create(ctx context.Context, authorID string, req *models.CreatePostRequest) (*models.Post, error)
	// Update, mevcut yazıyı partial update ile günceller.
	Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	// GetByID, admin CMS için — published filtresi yok.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// GetPublishedBySlug, public taraf için — yayında olmayan yazı NotFound döner.
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error)
	// ListPublished, public liste — cache'lenir.
	ListPublished(ctx context.Context) ([]models.Post, error)
	// ListAll, admin CMS listesi — taslaklar dahil, cache'siz.
	ListAll(ctx context.Context) ([]models.Post, error)
}

// blogService, BlogService interface'inin implementasyonu.
type blogService struct {
	postRepo  repository.PostRepository
	listCache *cache.TTLCache[string, []models.Post]
}

// NewBlogService, constructor.
// listCache nil olabilir — o durumda public liste her seferinde DB'den okunur.
func NewBlogService(postRepo repository.PostRepository, listCache *cache.TTLCache[string, []models.Post]) BlogService {
	return &blogService{
		postRepo:  postRepo,
		listCache: listCache,
	}
}

func (s *blogService) Create(ctx context.Context, authorID string, req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post := &models.Post{
		Slug:      Slugify(req.Title),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		Published: req.Published,
	}
	if req.Excerpt != "" {
		post.Excerpt = &req.Excerpt
	}
	if req.CoverImageURL != "" {
		post.CoverImageURL = &req.CoverImageURL
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	// Slug çakışırsa uuid suffix'i ile bir kez daha dene.
	// Aynı başlıklı iki yazı meşru bir durumdur — hata değil.
	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, pkg.ErrAlreadyExists) {
			post.Slug = post.Slug + "-" + uuid.NewString()[:8]
			if retryErr := s.postRepo.Create(ctx, post); retryErr != nil {
				return nil, retryErr
			}
		} else {
			return nil, err
		}
	}

	s.invalidate()
	return post, nil
}

func (s *blogService) Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != post.Title {
		post.Title = *req.Title
		post.Slug = Slugify(*req.Title) // başlık değişti → slug yeniden üretilir
	}
	if req.Excerpt != nil {
		if *req.Excerpt == "" {
			post.Excerpt = nil
		} else {
			post.Excerpt = req.Excerpt
		}
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CoverImageURL != nil {
		if *req.CoverImageURL == "" {
			post.CoverImageURL = nil
		} else {
			post.CoverImageURL = req.CoverImageURL
		}
	}
	if req.Published != nil {
		// İlk yayına alınışta damga at; yayından kaldırmak damgayı SİLMEZ
		// (yazı tekrar yayınlanırsa orijinal yayın tarihi korunur).
		if *req.Published && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, pkg.ErrAlreadyExists) {
			post.Slug = post.Slug + "-" + uuid.NewString()[:8]
			if retryErr := s.postRepo.Update(ctx, post); retryErr != nil {
				return nil, retryErr
			}
		} else {
			return nil, err
		}
	}

	s.invalidate()
	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *blogService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Taslak, public tarafta YOK hükmündedir — 403 değil 404:
	// yazının varlığı bile sızdırılmaz.
	if !post.Published {
		return nil, pkg.ErrNotFound
	}

	return post, nil
}

func (s *blogService) ListPublished(ctx context.Context) ([]models.Post, error) {
	if s.listCache != nil {
		if posts, ok := s.listCache.Get(publishedCacheKey); ok {
			return posts, nil
		}
	}

	posts, err := s.postRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	if s.listCache != nil {
		s.listCache.Set(publishedCacheKey, posts)
	}

	return posts, nil
}

func (s *blogService) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx, false)
}

// invalidate, her yazma işleminden sonra public liste cache'ini düşürür.
func (s *blogService) invalidate() {
	if s.listCache != nil {
		s.listCache.Delete(publishedCacheKey)
	}
}

// Slugify, yazı başlığından URL-güvenli slug üretir.
//
// Türkçe karakterler ASCII karşılıklarına katlanır (ç→c, ğ→g, ı→i, ö→o,
// ş→s, ü→u), harf/rakam dışı her şey tire olur, ardışık tireler tekilleşir.
// Boş sonuç (tamamı sembol başlık) için "yazi" fallback'i döner.
func Slugify(title string) string {
	replacer := strings.NewReplacer(
		"ç", "c", "Ç", "c",
		"ğ", "g", "Ğ", "g",
		"ı", "i", "İ", "i",
		"ö", "o", "Ö", "o",
		"ş", "s", "Ş", "s",
		"ü", "u", "Ü", "u",
	)
	s := strings.ToLower(replacer.Replace(title))

	var b strings.Builder
	prevDash := false
	for _, ch := range s {
		switch {
		case (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9'):
			b.WriteRune(ch)
			prevDash = false
		case !prevDash && b.Len() > 0:
			b.WriteByte('-')
			prevDash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "yazi"
	}
	return slug
}

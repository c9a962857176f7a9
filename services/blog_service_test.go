package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/pkg/cache"
	"github.com/akinalp/emlakkit/repository"
)

// fakePostRepo, in-memory PostRepository.
// listCalls, cache davranışını doğrulamak için List çağrılarını sayar.
type fakePostRepo struct {
	posts     map[string]*models.Post
	nextID    int
	listCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	for _, p := range f.posts {
		if p.Slug == post.Slug {
			return pkg.ErrAlreadyExists
		}
	}
	f.nextID++
	post.ID = "post-" + string(rune('0'+f.nextID))
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePostRepo) GetBySlug(_ context.Context, slug string) (*models.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakePostRepo) List(_ context.Context, onlyPublished bool) ([]models.Post, error) {
	f.listCalls++
	var out []models.Post
	for _, p := range f.posts {
		if onlyPublished && !p.Published {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePostRepo) Update(_ context.Context, post *models.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return pkg.ErrNotFound
	}
	for _, p := range f.posts {
		if p.Slug == post.Slug && p.ID != post.ID {
			return pkg.ErrAlreadyExists
		}
	}
	post.UpdatedAt = time.Now()
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return pkg.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) Count(_ context.Context) (int, error) {
	return len(f.posts), nil
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

func newTestBlogService(t *testing.T) (BlogService, *fakePostRepo, *cache.TTLCache[string, []models.Post]) {
	t.Helper()
	repo := newFakePostRepo()
	listCache := cache.New[string, []models.Post](time.Minute, time.Minute)
	t.Cleanup(listCache.Close)
	return NewBlogService(repo, listCache), repo, listCache
}

func TestBlogService_CreateDraft(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	post, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title:   "Konut Kredisi Rehberi",
		Content: "İçerik...",
	})
	require.NoError(t, err)

	assert.Equal(t, "konut-kredisi-rehberi", post.Slug)
	assert.Equal(t, "adm-1", post.AuthorID)
	assert.False(t, post.Published)
	// Taslakta yayın damgası olmamalı
	assert.Nil(t, post.PublishedAt)
}

func TestBlogService_CreatePublishedStampsDate(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	post, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title:     "Yayındaki Yazı",
		Content:   "İçerik...",
		Published: true,
	})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now(), *post.PublishedAt, 5*time.Second)
}

// Aynı başlık meşrudur — slug çakışmasında suffix ile yeniden denenmeli.
func TestBlogService_SlugCollisionRetry(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	first, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title: "Aynı Başlık", Content: "a",
	})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title: "Aynı Başlık", Content: "b",
	})
	require.NoError(t, err)

	assert.Equal(t, "ayni-baslik", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "ayni-baslik-")
}

func TestBlogService_PublishStampSurvivesUnpublish(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	post, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title: "Damga Testi", Content: "x", Published: true,
	})
	require.NoError(t, err)
	originalStamp := *post.PublishedAt

	// Yayından kaldır — damga SİLİNMEMELİ
	unpub := false
	post, err = svc.Update(context.Background(), post.ID, &models.UpdatePostRequest{Published: &unpub})
	require.NoError(t, err)
	assert.False(t, post.Published)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, originalStamp, *post.PublishedAt)

	// Tekrar yayınla — orijinal tarih korunmalı
	pub := true
	post, err = svc.Update(context.Background(), post.ID, &models.UpdatePostRequest{Published: &pub})
	require.NoError(t, err)
	assert.Equal(t, originalStamp, *post.PublishedAt)
}

// Taslak public taraftan slug ile bile okunamaz — 404, 403 değil.
func TestBlogService_DraftHiddenFromPublic(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	post, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title: "Gizli Taslak", Content: "x",
	})
	require.NoError(t, err)

	_, err = svc.GetPublishedBySlug(context.Background(), post.Slug)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Admin tarafından ise okunabilir
	got, err := svc.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gizli Taslak", got.Title)
}

func TestBlogService_ListPublishedUsesCache(t *testing.T) {
	svc, repo, _ := newTestBlogService(t)

	_, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title: "Cache Testi", Content: "x", Published: true,
	})
	require.NoError(t, err)

	_, err = svc.ListPublished(context.Background())
	require.NoError(t, err)
	_, err = svc.ListPublished(context.Background())
	require.NoError(t, err)

	// İkinci çağrı cache'ten gelmeli — repo sadece bir kez sorgulanır
	assert.Equal(t, 1, repo.listCalls)
}

func TestBlogService_WriteInvalidatesCache(t *testing.T) {
	svc, repo, _ := newTestBlogService(t)

	post, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title: "İlk Yazı", Content: "x", Published: true,
	})
	require.NoError(t, err)

	posts, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)

	// Silme, cache'i düşürmeli — sonraki liste tekrar DB'ye gitmeli
	require.NoError(t, svc.Delete(context.Background(), post.ID))

	posts, err = svc.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 2, repo.listCalls)
}

func TestBlogService_UpdateTitleRegeneratesSlug(t *testing.T) {
	svc, _, _ := newTestBlogService(t)

	post, err := svc.Create(context.Background(), "adm-1", &models.CreatePostRequest{
		Title: "Eski Başlık", Content: "x",
	})
	require.NoError(t, err)

	newTitle := "Yeni Başlık"
	post, err = svc.Update(context.Background(), post.ID, &models.UpdatePostRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "yeni-baslik", post.Slug)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Konut Kredisi Rehberi":        "konut-kredisi-rehberi",
		"İstanbul'da Çılgın Fiyatlar!": "istanbul-da-cilgin-fiyatlar",
		"Ev 2026":                      "ev-2026",
		"ŞĞÜÖÇI":                       "sguoci",
		"   boşluk   testi   ":         "bosluk-testi",
		"!!!":                          "yazi", // tamamı sembol → fallback
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

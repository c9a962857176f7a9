package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Post, bir blog yazısını temsil eder.
// DB'deki "posts" tablosunun Go karşılığı.
//
// Published = false olan yazılar sadece admin endpoint'lerinden görünür.
// Public taraf yazıya slug ile erişir (/api/posts/{slug}).
type Post struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       *string    `json:"excerpt"`         // Nullable — liste görünümünde kullanılan özet
	Content       string     `json:"content"`         // Markdown gövde
	CoverImageURL *string    `json:"cover_image_url"` // Nullable
	AuthorID      string     `json:"author_id"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at"` // İlk yayına alınma zamanı
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreatePostRequest, yeni yazı oluşturma isteği.
// AuthorID request'te YOKTUR — auth middleware'ın context'e koyduğu
// kimlikten damgalanır (client'a yazar seçtirmeyiz).
type CreatePostRequest struct {
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	CoverImageURL string `json:"cover_image_url"`
	Published     bool   `json:"published"`
}

// Validate, CreatePostRequest'i kontrol eder.
// Title 3-200 karakter, Content boş olamaz, Excerpt max 500 karakter.
func (r *CreatePostRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 3 || titleLen > 200 {
		return fmt.Errorf("title must be between 3 and 200 characters")
	}

	if strings.TrimSpace(r.Content) == "" {
		return fmt.Errorf("content is required")
	}

	r.Excerpt = strings.TrimSpace(r.Excerpt)
	if utf8.RuneCountInString(r.Excerpt) > 500 {
		return fmt.Errorf("excerpt must be at most 500 characters")
	}

	return nil
}

// UpdatePostRequest, yazı güncelleme isteği.
// Pointer field'lar "partial update" sağlar: nil → dokunma, değer → güncelle.
type UpdatePostRequest struct {
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	Content       *string `json:"content"`
	CoverImageURL *string `json:"cover_image_url"`
	Published     *bool   `json:"published"`
}

// Validate, UpdatePostRequest'i kontrol eder — sadece set edilen field'lar.
func (r *UpdatePostRequest) Validate() error {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		titleLen := utf8.RuneCountInString(t)
		if titleLen < 3 || titleLen > 200 {
			return fmt.Errorf("title must be between 3 and 200 characters")
		}
		*r.Title = t
	}

	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if r.Excerpt != nil && utf8.RuneCountInString(*r.Excerpt) > 500 {
		return fmt.Errorf("excerpt must be at most 500 characters")
	}

	return nil
}

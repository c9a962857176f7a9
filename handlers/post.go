// Bu dosya — PostHandler: blog endpoint'leri.
//
// Public taraf (liste + slug ile okuma) auth gerektirmez.
// Admin CRUD endpoint'leri auth middleware arkasındadır.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/services"
)

// PostHandler, blog endpoint'lerini yöneten struct.
type PostHandler struct {
	blogService services.BlogService
}

// NewPostHandler, constructor.
func NewPostHandler(blogService services.BlogService) *PostHandler {
	return &PostHandler{blogService: blogService}
}

// ─── Public endpoint'ler ───

// ListPublished godoc
// GET /api/posts
// Sadece yayındaki yazılar, yayın tarihine göre yeniden eskiye.
func (h *PostHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.ListPublished(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, posts)
}

// GetBySlug godoc
// GET /api/posts/{slug}
// Taslak yazı için 404 döner — varlığı bile sızdırılmaz.
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := h.blogService.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// ─── Admin endpoint'ler (auth middleware arkasında) ───

// ListAll godoc
// GET /api/admin/posts
// Taslaklar dahil tüm yazılar — CMS listesi.
func (h *PostHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.ListAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, posts)
}

// GetByID godoc
// GET /api/admin/posts/{id}
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	post, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Create godoc
// POST /api/admin/posts
// Yazar, oturumdaki admin'dir — body'den author alınmaz.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := r.Context().Value(AdminContextKey).(*models.SessionIdentity)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "session not found in context")
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.blogService.Create(r.Context(), identity.AdminID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, post)
}

// Update godoc
// PUT /api/admin/posts/{id}
// Partial update: body'de sadece gönderilen alanlar değişir.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.blogService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Delete godoc
// DELETE /api/admin/posts/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

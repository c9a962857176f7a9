// Bu dosya — GeneratorHandler: pazarlama metni üretici endpoint'leri.
//
// Üretim public'tir (hesaplayıcılar gibi); bülten test gönderimi admin-only
// ve auth middleware arkasındadır — email gönderme maliyetli bir yan etkidir.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/pkg/email"
	"github.com/akinalp/emlakkit/services"
)

// GeneratorHandler, üretici endpoint'lerini yöneten struct.
// emailSender nil olabilir — o durumda test gönderimi 503 döner
// (RESEND_API_KEY konfigüre edilmemiş demektir).
type GeneratorHandler struct {
	generatorService services.GeneratorService
	emailSender      email.EmailSender
}

// NewGeneratorHandler, constructor.
func NewGeneratorHandler(generatorService services.GeneratorService, emailSender email.EmailSender) *GeneratorHandler {
	return &GeneratorHandler{
		generatorService: generatorService,
		emailSender:      emailSender,
	}
}

// Generate godoc
// POST /api/generators
// Body'deki "kind" alanı hangi üreticinin çalışacağını seçer.
func (h *GeneratorHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateCopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.generatorService.Generate(&req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, out)
}

// NewsletterTestSend godoc
// POST /api/admin/newsletter/test-send
// Auth middleware arkasında — üretilen bülteni verilen adrese test olarak yollar.
func (h *GeneratorHandler) NewsletterTestSend(w http.ResponseWriter, r *http.Request) {
	if h.emailSender == nil {
		pkg.ErrorWithMessage(w, http.StatusServiceUnavailable, "email sending is not configured")
		return
	}

	var req models.NewsletterTestSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.emailSender.SendNewsletterPreview(r.Context(), req.To, req.Subject, req.Body); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "test email sent"})
}

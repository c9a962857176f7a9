// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi çok basit ve "ince" (thin) olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı (business logic) içermez.
// Handler ASLA doğrudan DB'ye erişmez.
// Tüm akıl service'de, handler sadece köprü.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/pkg/ratelimit"
	"github.com/akinalp/emlakkit/services"
)

// SessionCookieName, admin oturum cookie'sinin adı.
// Middleware ve handler aynı sabiti kullanır.
const SessionCookieName = "admin_session"

// AuthHandler, admin auth endpoint'lerini yöneten struct.
// Service interface'i ve rate limiter constructor'dan alınır (DI).
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
	maxAgeSec    int  // cookie ömrü (saniye)
	secureCookie bool // production'da true — cookie sadece HTTPS üzerinden gider
}

// NewAuthHandler, constructor.
// loginLimiter: Login brute-force koruması. nil ise rate limiting devre dışı kalır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter, maxAgeSec int, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		maxAgeSec:    maxAgeSec,
		secureCookie: secureCookie,
	}
}

// Login godoc
// POST /api/auth/login
//
// Başarılı login'de imzalı session token HttpOnly cookie olarak set edilir —
// response body'de token YOKTUR, sadece admin bilgisi döner. Frontend JS
// token'a hiç dokunmaz (XSS ile çalınamaz).
//
// Rate limiting: IP bazlı brute-force koruması.
// - Her IP adresi için belirli bir zaman penceresi içinde izin verilen
//   maksimum login denemesi sayısı sınırlandırılır.
// - Limit aşıldığında 429 Too Many Requests döner.
// - Başarılı login sayacı sıfırlar — meşru kullanıcı bloke olmaz.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Rate limit kontrolü — brute-force koruması
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many login attempts, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	// Başarılı login — sayacı sıfırla.
	// Meşru kullanıcı doğru şifreyi girdiğinde sayaç temizlenir,
	// böylece sonraki oturumlarında rate limit'e takılmaz.
	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	h.setSessionCookie(w, token)
	pkg.JSON(w, http.StatusOK, admin)
}

// Logout godoc
// POST /api/auth/logout
//
// Idempotent: oturum olsun olmasın her zaman 200 döner. Token self-contained
// olduğu için server tarafında silinecek state yoktur — logout, cookie'yi
// client'tan düşürmekten ibarettir.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me godoc
// GET /api/auth/me
// Auth middleware gerektirir — context'te kimlik bilgisi olur.
// Frontend sayfa açılışında "oturum hâlâ geçerli mi?" diye bunu çağırır.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := r.Context().Value(AdminContextKey).(*models.SessionIdentity)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "session not found in context")
		return
	}

	pkg.JSON(w, http.StatusOK, identity)
}

// setSessionCookie, imzalı token'ı oturum cookie'si olarak yazar.
//
// HttpOnly: JS erişemez (document.cookie'de görünmez).
// SameSite=Lax: cross-site POST'larda cookie gitmez (CSRF azaltımı),
// normal link tıklamalarında gider.
// Secure: production'da true — cookie düz HTTP'de asla gönderilmez.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.maxAgeSec,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie, cookie'yi client'tan siler.
// MaxAge: -1 → tarayıcı cookie'yi hemen düşürür. Diğer attribute'lar
// set ile birebir aynı olmalı, yoksa tarayıcı farklı cookie sanır.
func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// AdminContextKey, context'te oturum kimliğini taşımak için kullanılan key.
// Custom tip kullanmak zorunlu — string kullanırsak başka paketlerin
// context key'leri ile çakışabilir (Go vet bu konuda uyarır).
type contextKey string

const AdminContextKey contextKey = "admin"

// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern nedir?
// Her HTTP request, handler'a ulaşmadan önce bir veya daha fazla middleware'dan geçer.
// Middleware'lar zincir şeklinde çalışır: Auth → Handler
//
// Go'da middleware bir fonksiyondur:
//   func(next http.Handler) http.Handler
//
// "next" parametresi zincirdeki bir sonraki handler'dır.
// Middleware kendi işini yapar (ör: cookie doğrula), sonra next'i çağırır.
// Eğer hata varsa next'i çağırmaz → request burada durur.
package middleware

import (
	"context"
	"net/http"

	"github.com/akinalp/emlakkit/handlers"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/services"
)

// AuthMiddleware, session cookie doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require, geçerli admin oturumu zorunlu kılan middleware.
// Cookie yoksa veya token geçersizse → 401 Unauthorized.
//
// Middleware nasıl çalışır?
// 1. "admin_session" cookie'sini oku
// 2. AuthService.ValidateSession() ile doğrula (imza + shape + hesap varlığı)
// 3. Geçerliyse → kimliği context'e ekle → next handler'ı çağır
// 4. Geçersizse → 401 döndür, next ÇAĞIRILMAZ
//
// Hangi nedenle reddedildiği response'tan anlaşılmaz — sahte cookie üreten
// biri "imza mı yanlış, hesap mı yok" bilgisini alamaz.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Cookie'yi al — yokluğu rutin bir durumdur (oturumsuz ziyaretçi),
		// log kirliliği yaratmaz
		cookie, err := r.Cookie(handlers.SessionCookieName)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		// 2. Token'ı doğrula — buraya gelen her değer adversarial kabul edilir
		identity, err := m.authService.ValidateSession(r.Context(), cookie.Value)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		// 3. Context'e kimliği ekle
		// context.WithValue: mevcut context'e key-value ekler.
		// Downstream handler'lar r.Context().Value(AdminContextKey) ile erişir.
		ctx := context.WithValue(r.Context(), handlers.AdminContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model nedir?
// Veritabanındaki bir tablonun Go karşılığıdır.
// Aynı zamanda API'den gelen/giden verilerin şeklini de belirler.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Admin, blog içeriğini yönetmeye yetkili bir hesabı temsil eder.
// DB'deki "admins" tablosunun Go karşılığı.
//
// Hesaplar out-of-band provisioning ile oluşturulur (-create-admin flag'i) —
// HTTP üzerinden admin kaydı YOKTUR. Auth core hesapları sadece okur:
// login sırasında ve session doğrulamasında.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // UNIQUE — login anahtarı
	PasswordHash string    `json:"-"`     // json:"-" → API response'a DAHİL ETME (güvenlik!)
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionIdentity, session cookie'sine gömülen kimlik anlık görüntüsüdür (snapshot).
//
// Login anında yakalanır ve token içinde taşınır — her request'te alan alan
// DB'den tazelenmez. Request başına sadece AdminID'nin hâlâ var olduğu kontrol
// edilir (hesap silinmişse oturum düşer). DisplayName güncellemesi gibi
// tazelik sorunları yeniden login ile çözülür.
type SessionIdentity struct {
	AdminID     string `json:"admin_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// LoginRequest, giriş yaparken frontend'den gelen veri.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
// Sadece shape kontrolü — "email kayıtlı mı" gibi sorulara burada CEVAP VERİLMEZ
// (enumeration koruması service katmanında generic hata ile sağlanır).
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// CreateAdminRequest, provisioning adımında (CLI flag) kullanılan veri.
type CreateAdminRequest struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate, CreateAdminRequest'i kontrol eder.
// Kurallar:
//   - Email: geçerli format
//   - Password: minimum 8 karakter
//   - DisplayName: 1-64 karakter
func (r *CreateAdminRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if !EmailRegex().MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}

	if utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	r.DisplayName = strings.TrimSpace(r.DisplayName)
	nameLen := utf8.RuneCountInString(r.DisplayName)
	if nameLen < 1 || nameLen > 64 {
		return fmt.Errorf("display name must be between 1 and 64 characters")
	}

	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// EmailRegex, email format doğrulaması için paylaşılan regex'i döner.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

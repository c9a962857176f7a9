// Bu dosya — AuthService: login, session doğrulama ve admin provisioning.
//
// Service Layer Pattern:
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır.
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
//
// Güvenlik notları:
//   - Login hatası her durumda aynı generic mesajı döner — "email kayıtlı değil"
//     ile "şifre yanlış" ayırt edilemez (account enumeration koruması).
//   - Plaintext şifre hiçbir yerde loglanmaz veya saklanmaz.
//   - Session doğrulaması cookie'deki snapshot'a güvenir ama hesabın hâlâ
//     var olduğunu her seferinde DB'den kontrol eder (silinen hesabın açık
//     oturumu bir sonraki request'te düşer).
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/repository"
)

// bcryptCost, şifre hash'leme maliyet faktörü.
// 12, 2026 donanımında hash başına ~250ms civarı — brute-force'u yavaşlatır,
// login latency'sini kabul edilebilir tutar. Salt ve cost digest'in içinde
// taşınır; doğrulama için yan kanal state gerekmez.
const bcryptCost = 12

// AuthService interface'i — dışarıya açık API.
// Handler ve middleware bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	// Login, email+şifre doğrular; başarılıysa admin kaydını ve imzalı
	// session token'ını döner. Başarısızlıkta generic unauthorized.
	Login(ctx context.Context, req *models.LoginRequest) (*models.Admin, string, error)
	// ValidateSession, cookie'den okunan token'ı doğrular.
	// İmza + shape + hesap varlığı; herhangi biri düşerse unauthorized.
	ValidateSession(ctx context.Context, token string) (*models.SessionIdentity, error)
	// CreateAdmin, provisioning adımı (CLI) için hesap oluşturur.
	CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error)
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	adminRepo repository.AdminRepository
	codec     *SessionCodec
}

// NewAuthService, constructor.
func NewAuthService(adminRepo repository.AdminRepository, codec *SessionCodec) AuthService {
	return &authService{
		adminRepo: adminRepo,
		codec:     codec,
	}
}

// Login, admin girişi yapar.
//
// Akış: email ile hesap bul → bcrypt doğrula → kimlik snapshot'ını imzala.
// "Hesap yok" ve "şifre yanlış" AYNI hatayı döner — response'tan veya
// status code'dan hangisi olduğu anlaşılamaz.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.Admin, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
		}
		return nil, "", err
	}

	if !verifyPassword(req.Password, admin.PasswordHash) {
		return nil, "", fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
	}

	token, err := s.codec.Encode(&models.SessionIdentity{
		AdminID:     admin.ID,
		Email:       admin.Email,
		DisplayName: admin.DisplayName,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	// Hash'i response'a taşıma — handler admin'i JSON'a serialize eder
	// (json:"-" zaten koruyor ama context'te de temiz taşınsın)
	admin.PasswordHash = ""

	return admin, token, nil
}

// ValidateSession, token'ı çözer ve hesabın hâlâ var olduğunu doğrular.
//
// Cookie yokluğu buraya hiç gelmez (middleware halleder); buraya gelen her
// string adversarial kabul edilir. Bozuk, sahte veya silinmiş hesaba ait
// token'ların HEPSİ aynı unauthorized hatasına normalize edilir — forged
// cookie rutin trafiktir, exception değil.
func (s *authService) ValidateSession(ctx context.Context, token string) (*models.SessionIdentity, error) {
	identity, err := s.codec.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid session", pkg.ErrUnauthorized)
	}

	// Varlık kontrolü: token imzalandıktan sonra hesap silinmiş olabilir.
	// Sadece varlık — alan tazeliği değil (kimlik cookie'deki snapshot'tır).
	if _, err := s.adminRepo.GetByID(ctx, identity.AdminID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid session", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	return identity, nil
}

// CreateAdmin, yeni admin hesabı oluşturur.
// Sadece out-of-band provisioning'den çağrılır (main.go -create-admin).
// Email uniqueness kontrolü store'a bırakılır — burada re-check yapılmaz.
func (s *authService) CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	return admin, nil
}

// ─── Password Hasher ───

// hashPassword, plaintext şifreyi bcrypt digest'ine çevirir.
// Digest, salt'ı ve cost'u kendi içinde taşır — her çağrıda farklı digest
// üretilir (salted) ama hepsi aynı plaintext ile doğrulanır.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// verifyPassword, plaintext denemesini saklanan digest ile karşılaştırır.
//
// bcrypt karşılaştırması kendi sabit davranışıyla çalışır — üstüne erken
// çıkışlı byte karşılaştırması EKLENMEZ. Bozuk formatta digest de false
// döner (fail closed): caller "bozuk digest" ile "yanlış şifre"yi ayırt
// edemez, dolayısıyla sızdıramaz.
func verifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

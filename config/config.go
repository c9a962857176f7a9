// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Go'da "struct" bir veri yapısıdır — birden fazla field'ı bir arada tutar.
// Config struct'ı tüm ayarları tek bir yerde toplar, böylece
// her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DeploymentMode, uygulamanın hangi ortamda çalıştığını belirtir.
// Go'da enum yoktur — typed constant'lar kullanılır.
//
// Neden ad hoc os.Getenv("APP_ENV") değil de explicit bir tip?
// Ortam kontrolü business logic'in içine dağılırsa test edilemez hale gelir.
// Mode bir kez burada çözülür, Config üzerinde taşınır — service'ler env okumak
// yerine cfg.Mode'a bakar.
type DeploymentMode string

const (
	ModeDevelopment DeploymentMode = "development"
	ModeProduction  DeploymentMode = "production"
	ModeTest        DeploymentMode = "test"
)

// sessionSecretSalt, development fallback secret türetiminde kullanılan sabit tuz.
// Secret = sha256(databasePath + bu tuz). Uygulamaya özel olması yeterli —
// gizli olması gerekmez çünkü bu yol sadece local development içindir.
const sessionSecretSalt = "emlakkit-session-v1"

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — Single Responsibility: her struct tek bir concern'ü temsil eder.
type Config struct {
	Mode     DeploymentMode
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Email    EmailConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/emlakkit.db)
}

// SessionConfig, admin session cookie ayarları.
//
// Secret, session token'larını imzalayan HMAC anahtarıdır.
// Load() tarafından process başında BİR KEZ çözülür ve bir daha değişmez —
// runtime'da rotate edilmez (rotate etmek tüm açık oturumları geçersiz kılar;
// bu beklenen davranıştır ama sadece restart ile olur).
type SessionConfig struct {
	Secret    []byte // HMAC imzalama anahtarı — GİZLİ TUTULMALI
	MaxAgeSec int    // Cookie ömrü, saniye (varsayılan: 7 gün)
}

// EmailConfig, Resend API ayarları (newsletter test gönderimi için).
// ResendAPIKey boş bırakılabilir — o durumda email gönderimi devre dışı kalır.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
//
// Session secret çözümü burada, startup'ta yapılır — lazy first-access değil.
// Server traffic almadan önce ya geçerli bir secret vardır ya da process hiç başlamaz.
//
// Go'da error handling: Go'da exception/try-catch yoktur.
// Fonksiyonlar hata durumunda (value, error) tuple'ı döner.
// Çağıran taraf her zaman error'ı kontrol ETMEK ZORUNDADIR.
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	mode, err := parseMode(getEnv("APP_ENV", string(ModeDevelopment)))
	if err != nil {
		return nil, err
	}

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxAge, err := strconv.Atoi(getEnv("SESSION_MAX_AGE_SECONDS", "604800")) // 7 gün
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE_SECONDS: %w", err)
	}

	dbPath := getEnv("DATABASE_PATH", "./data/emlakkit.db")

	secret, err := resolveSessionSecret(mode, getEnv("SESSION_SECRET", ""), dbPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Mode: mode,
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Session: SessionConfig{
			Secret:    secret,
			MaxAgeSec: maxAge,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("EMAIL_FROM", "noreply@emlakkit.app"),
		},
	}

	return cfg, nil
}

// resolveSessionSecret, HMAC imzalama anahtarını çözer.
//
// Çözüm sırası:
//  1. SESSION_SECRET set edilmişse → olduğu gibi kullan.
//     Production deployment için DESTEKLENEN TEK YOL budur.
//  2. Production'da secret yoksa → HARD STOP. Session token imzalayan bir
//     sistem production'da asla secret "tahmin etmez".
//  3. Development/test → databasePath + sabit tuzdan sha256 ile deterministik
//     bir pseudo-secret türet. Restart'lar arası aynı kalır (açık oturumlar
//     geçerli kalır) ama paylaşımlı/staging ortamlar için GÜVENSİZDİR —
//     log'a uyarı basılır.
//
// Türetim girdisi de yoksa (dbPath boş) bu fatal bir konfigürasyon hatasıdır:
// ilk request'te değil, startup'ta patlar.
func resolveSessionSecret(mode DeploymentMode, explicit, dbPath string) ([]byte, error) {
	if explicit != "" {
		return []byte(explicit), nil
	}

	if mode == ModeProduction {
		return nil, fmt.Errorf("SESSION_SECRET is required in production")
	}

	if dbPath == "" {
		return nil, fmt.Errorf("cannot derive session secret: DATABASE_PATH is empty and SESSION_SECRET is not set")
	}

	// Deterministik fallback: aynı konfigürasyon → aynı secret.
	// DİKKAT: dbPath değişirse secret de değişir ve tüm açık oturumlar
	// sessizce geçersiz olur. Bu bilinen bir development kolaylığıdır,
	// uzun vadeli bir tasarım hedefi değildir.
	sum := sha256.Sum256([]byte(dbPath + sessionSecretSalt))
	derived := hex.EncodeToString(sum[:])

	log.Println("[config] WARNING: SESSION_SECRET not set, using a secret derived from DATABASE_PATH")
	log.Println("[config] WARNING: this fallback is for local development only — never rely on it outside dev")

	return []byte(derived), nil
}

// parseMode, APP_ENV değerini DeploymentMode'a çevirir.
// Bilinmeyen değer fatal'dır — "prod" yazıp yanlışlıkla development
// modunda koşmak istemeyiz.
func parseMode(s string) (DeploymentMode, error) {
	switch DeploymentMode(s) {
	case ModeDevelopment, ModeProduction, ModeTest:
		return DeploymentMode(s), nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q (expected development, production or test)", s)
	}
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction, kısa yol — cookie Secure flag'i gibi yerlerde kullanılır.
func (c *Config) IsProduction() bool {
	return c.Mode == ModeProduction
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

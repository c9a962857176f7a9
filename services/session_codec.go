// Package services, business logic katmanını barındırır.
//
// Bu dosya — SessionCodec: session cookie değerinin kodlanması ve doğrulanması.
//
// Sunucu tarafında session tablosu YOKTUR. Cookie değerinin kendisi kimliği
// taşır ve bir HMAC imzası ile mühürlenir — doğruluğun kaynağı imzadır.
// Bu sayede request'ler arası hiçbir paylaşılan state gerekmez: her request'in
// cookie'si kendi başına doğrulanabilir (stateless session).
//
// Token formatı (cookie değeri):
//
//	base64url(JSON kimlik) + "." + hex(HMAC-SHA256(base64url kısmı, secret))
//
// Tam olarak BİR nokta ayracı vardır. base64url alfabesinde de hex alfabesinde
// de nokta bulunmadığı için ayraç iki parçada da geçemez.
//
// Güvenlik invariant'ları:
//   - Kimlik kısmındaki veya imzadaki HERHANGİ bir değişiklik decode'u düşürür.
//   - İmza karşılaştırması constant-time yapılır (hmac.Equal) — timing
//     side-channel ile imza tahmin edilemez. Uzunluk uyuşmazlığında panic
//     atmaz, false döner.
//   - Her başarısızlık tek bir "invalid session" sonucuna normalize edilir;
//     caller'a asla yarı-güvenilir bir kimlik dönmez.
package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/emlakkit/models"
)

// ErrInvalidSession, decode edilemeyen/doğrulanamayan her token için dönen hatadır.
// Dış kontrat "geçerli ya da değil"dir — sebep ayrımı sadece wrap edilen
// iç hatalarda yaşar (log/test için), HTTP yanıtına yansımaz.
var ErrInvalidSession = errors.New("invalid session")

// İç başarısızlık sebepleri — her yol ErrInvalidSession altında toplanır.
// Sebepler enumerated tutulur ki bir decode hatası ile bir imza hatası
// log'da ayırt edilebilsin; dışarıya hepsi aynı görünür.
var (
	errTokenShape     = errors.New("malformed token shape")
	errTokenSignature = errors.New("signature mismatch")
	errTokenEncoding  = errors.New("undecodable payload")
)

// SessionCodec, kimlik kaydını imzalı cookie değerine çevirir ve geri çözer.
//
// secret, config.Load tarafından startup'ta BİR KEZ çözülür ve process ömrü
// boyunca değişmez — codec oluşturulduktan sonra sadece okunur, bu yüzden
// birden fazla goroutine lock'suz kullanabilir.
type SessionCodec struct {
	secret []byte
}

// NewSessionCodec, constructor.
func NewSessionCodec(secret []byte) *SessionCodec {
	return &SessionCodec{secret: secret}
}

// Encode, kimlik kaydını imzalı token string'ine çevirir.
//
// Adımlar: JSON serialize → base64url encode → encoded kısım üzerinden
// HMAC-SHA256 → "encoded.imza" birleştir.
func (c *SessionCodec) Encode(identity *models.SessionIdentity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to encode session identity: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(encoded), nil
}

// Decode, cookie'den okunan GÜVENİLMEZ string'i doğrular ve kimliği çözer.
//
// Sıralama önemli: önce shape, sonra imza, en son payload decode.
// Shape bozuksa kriptografiye hiç girilmez (fail fast on shape).
// İmza doğrulanmadan payload'a ASLA bakılmaz.
func (c *SessionCodec) Decode(token string) (*models.SessionIdentity, error) {
	// 1. Shape: tam olarak iki, boş olmayan parça
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, errTokenShape)
	}

	// 2. İmza: yeniden hesapla, constant-time karşılaştır.
	// hmac.Equal uzunluklar farklıysa panic atmadan false döner.
	expected := c.sign(parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, errTokenSignature)
	}

	// 3. Payload: imza doğru olduğuna göre decode edilebilir OLMALI —
	// yine de her parse hatası "invalid session"a normalize edilir,
	// raw hata asla caller'a sızmaz.
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, errTokenEncoding)
	}

	var identity models.SessionIdentity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, errTokenEncoding)
	}

	// İmzalı ama boş kimlik — bizim Encode'umuz üretmez, yine de fail closed.
	if identity.AdminID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, errTokenEncoding)
	}

	return &identity, nil
}

// sign, encoded string üzerinden HMAC-SHA256 hesaplar, hex döner.
func (c *SessionCodec) sign(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}

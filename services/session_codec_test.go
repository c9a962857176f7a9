package services

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/emlakkit/models"
)

func testIdentity() *models.SessionIdentity {
	return &models.SessionIdentity{
		AdminID:     "adm-123",
		Email:       "admin@emlakkit.app",
		DisplayName: "Test Admin",
	}
}

func TestSessionCodec_RoundTrip(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	token, err := codec.Encode(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Format: tam olarak iki parça, ayraç nokta
	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "adm-123", decoded.AdminID)
	assert.Equal(t, "admin@emlakkit.app", decoded.Email)
	assert.Equal(t, "Test Admin", decoded.DisplayName)
}

// Kimlik kısmındaki tek karakterlik değişiklik bile decode'u düşürmeli.
func TestSessionCodec_TamperedPayload(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	token, err := codec.Encode(testIdentity())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	payload := []byte(parts[0])

	for i := range payload {
		mutated := make([]byte, len(payload))
		copy(mutated, payload)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, err := codec.Decode(string(mutated) + "." + parts[1])
		assert.ErrorIs(t, err, ErrInvalidSession, "payload byte %d mutated", i)
	}
}

// İmzadaki tek karakterlik değişiklik de decode'u düşürmeli.
func TestSessionCodec_TamperedSignature(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	token, err := codec.Encode(testIdentity())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	sig := []byte(parts[1])

	for i := range sig {
		mutated := make([]byte, len(sig))
		copy(mutated, sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}

		_, err := codec.Decode(parts[0] + "." + string(mutated))
		assert.ErrorIs(t, err, ErrInvalidSession, "signature byte %d mutated", i)
	}
}

func TestSessionCodec_MalformedShape(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	valid, err := codec.Encode(testIdentity())
	require.NoError(t, err)

	cases := map[string]string{
		"empty":           "",
		"no delimiter":    strings.ReplaceAll(valid, ".", ""),
		"two delimiters":  valid + ".extra",
		"only delimiter":  ".",
		"empty payload":   "." + strings.Split(valid, ".")[1],
		"empty signature": strings.Split(valid, ".")[0] + ".",
		"random garbage":  "not-a-session-token",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(token)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

// Farklı secret ile imzalanan token kabul EDİLMEMELİ —
// staging token'ı production'da çalışmaz.
func TestSessionCodec_CrossSecret(t *testing.T) {
	codecA := NewSessionCodec([]byte("secret-a"))
	codecB := NewSessionCodec([]byte("secret-b"))

	token, err := codecA.Encode(testIdentity())
	require.NoError(t, err)

	_, err = codecB.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

// Saldırgan imzasız kendi payload'unu üretirse reddedilmeli.
func TestSessionCodec_ForgedToken(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	forged := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"admin_id":"adm-999","email":"evil@example.com","display_name":"x"}`),
	)

	_, err := codec.Decode(forged + ".deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

// İmza geçerli ama kimlik boş — bizim Encode'umuz üretmez, yine de fail closed.
func TestSessionCodec_EmptyAdminID(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	token, err := codec.Encode(&models.SessionIdentity{AdminID: ""})
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionCodec_Deterministic(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	t1, err := codec.Encode(testIdentity())
	require.NoError(t, err)
	t2, err := codec.Encode(testIdentity())
	require.NoError(t, err)

	// HMAC deterministiktir — aynı kimlik + aynı secret → aynı token.
	// (Token'da nonce/timestamp YOK; süre sınırı cookie Max-Age ile yönetilir.)
	assert.Equal(t, t1, t2)
}

func TestSessionCodec_ErrorsAreNormalized(t *testing.T) {
	codec := NewSessionCodec([]byte("test-secret"))

	// Hangi sebeple düşerse düşsün dış kontrat ErrInvalidSession'dır
	for _, token := range []string{"", "a.b.c", "x.y", "..", "π.∞"} {
		_, err := codec.Decode(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSession), "token %q", token)
	}
}

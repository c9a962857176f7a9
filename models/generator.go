package models

import (
	"fmt"
	"strings"
)

// CopyKind, üretilecek pazarlama metninin türü.
type CopyKind string

const (
	CopySocialPost CopyKind = "social_post" // Sosyal medya gönderisi
	CopyAdListing  CopyKind = "ad_listing"  // İlan metni
	CopyNewsletter CopyKind = "newsletter"  // Email bülteni
)

// CopyTone, metnin ses tonu — frontend'de bir select input'tur.
type CopyTone string

const (
	ToneProfessional CopyTone = "professional"
	ToneFriendly     CopyTone = "friendly"
	ToneLuxury       CopyTone = "luxury"
)

// PropertyType, ilana konu mülk tipi — frontend'de bir select input'tur.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyVilla     PropertyType = "villa"
	PropertyLand      PropertyType = "land"
	PropertyOffice    PropertyType = "office"
)

// GenerateCopyRequest, metin üretici girdisi.
// Üretim tamamen template interpolation'dır — select input'lar template
// seçimini, serbest alanlar (location, price...) placeholder'ları doldurur.
type GenerateCopyRequest struct {
	Kind         CopyKind     `json:"kind"`
	PropertyType PropertyType `json:"property_type"`
	Location     string       `json:"location"`
	Price        float64      `json:"price"`
	Rooms        string       `json:"rooms"` // "3+1" gibi serbest format
	AreaM2       float64      `json:"area_m2"`
	Tone         CopyTone     `json:"tone"`
	AgentName    string       `json:"agent_name"`
	AgentPhone   string       `json:"agent_phone"`
}

// Validate, GenerateCopyRequest'i kontrol eder.
// Enum alanlar whitelist ile doğrulanır — bilinmeyen değer template seçiminde
// panic yerine burada 400'e dönüşür.
func (r *GenerateCopyRequest) Validate() error {
	switch r.Kind {
	case CopySocialPost, CopyAdListing, CopyNewsletter:
	default:
		return fmt.Errorf("kind must be one of: social_post, ad_listing, newsletter")
	}

	switch r.PropertyType {
	case PropertyApartment, PropertyVilla, PropertyLand, PropertyOffice:
	default:
		return fmt.Errorf("property_type must be one of: apartment, villa, land, office")
	}

	if r.Tone == "" {
		r.Tone = ToneProfessional // varsayılan ton
	}
	switch r.Tone {
	case ToneProfessional, ToneFriendly, ToneLuxury:
	default:
		return fmt.Errorf("tone must be one of: professional, friendly, luxury")
	}

	r.Location = strings.TrimSpace(r.Location)
	if r.Location == "" {
		return fmt.Errorf("location is required")
	}

	if r.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if r.AreaM2 < 0 {
		return fmt.Errorf("area_m2 cannot be negative")
	}

	return nil
}

// GeneratedCopy, üretici çıktısı.
// Subject sadece newsletter türünde doludur.
type GeneratedCopy struct {
	Kind    CopyKind `json:"kind"`
	Subject string   `json:"subject,omitempty"`
	Body    string   `json:"body"`
}

// NewsletterTestSendRequest, üretilen bültenin test email'i olarak
// gönderilmesi isteği (admin-only).
type NewsletterTestSendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate, NewsletterTestSendRequest'i kontrol eder.
func (r *NewsletterTestSendRequest) Validate() error {
	r.To = strings.TrimSpace(strings.ToLower(r.To))
	if !EmailRegex().MatchString(r.To) {
		return fmt.Errorf("invalid recipient email")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

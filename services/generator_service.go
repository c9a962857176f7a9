// Bu dosya — GeneratorService: pazarlama metni üreticileri.
//
// Üç üretici vardır: sosyal medya gönderisi, ilan metni ve email bülteni.
// Hepsi text/template ile çalışır — şablonlar constructor'da bir kez parse
// edilir, request başına sadece Execute çağrılır.
package services

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
)

// GeneratorService interface'i — pazarlama metni üretimi.
type GeneratorService interface {
	// Generate, istenen türde pazarlama metni üretir.
	// Üretim tamamen deterministiktir — aynı girdi her zaman aynı çıktıyı verir.
	Generate(req *models.GenerateCopyRequest) (*models.GeneratedCopy, error)
}

// generatorService, GeneratorService implementasyonu.
// Şablonlar immutable'dır — service thread-safe'tir.
type generatorService struct {
	templates map[models.CopyKind]*template.Template
}

// copyContext, şablonlara geçirilen veri. Request alanlarının üzerine
// formatlanmış türev alanlar eklenir (fiyat, oda, alan metinleri).
type copyContext struct {
	PropertyLabel string // "Daire", "Villa" vb.
	Location      string
	PriceText     string // "4.750.000 TL" — binlik ayraçlı
	RoomsText     string // "3+1" veya boş
	AreaText      string // "145 m²" veya boş
	Tone          models.CopyTone
	AgentName     string
	AgentPhone    string
}

// NewGeneratorService, şablonları parse edip service'i oluşturur.
// Şablon hatası programlama hatasıdır — burada panic normaldir
// (uygulama başlarken patlar, production'da sessizce bozuk metin üretmez).
func NewGeneratorService() GeneratorService {
	return &generatorService{
		templates: map[models.CopyKind]*template.Template{
			models.CopySocialPost: template.Must(template.New("social").Parse(socialPostTemplate)),
			models.CopyAdListing:  template.Must(template.New("ad").Parse(adListingTemplate)),
			models.CopyNewsletter: template.Must(template.New("newsletter").Parse(newsletterTemplate)),
		},
	}
}

func (s *generatorService) Generate(req *models.GenerateCopyRequest) (*models.GeneratedCopy, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	tmpl, ok := s.templates[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown copy kind: %s", pkg.ErrBadRequest, req.Kind)
	}

	cctx := buildCopyContext(req)

	var buf strings.Builder
	if err := tmpl.Execute(&buf, cctx); err != nil {
		return nil, fmt.Errorf("failed to render copy template: %w", err)
	}

	copyOut := &models.GeneratedCopy{
		Kind: req.Kind,
		Body: strings.TrimSpace(buf.String()),
	}
	if req.Kind == models.CopyNewsletter {
		copyOut.Subject = newsletterSubject(cctx)
	}

	return copyOut, nil
}

// buildCopyContext, request'ten şablon verisini hazırlar.
func buildCopyContext(req *models.GenerateCopyRequest) copyContext {
	cctx := copyContext{
		PropertyLabel: propertyLabel(req.PropertyType),
		Location:      req.Location,
		PriceText:     FormatPriceTL(req.Price),
		Tone:          req.Tone,
		AgentName:     req.AgentName,
		AgentPhone:    req.AgentPhone,
	}
	if req.Rooms != "" {
		cctx.RoomsText = req.Rooms
	}
	if req.AreaM2 > 0 {
		cctx.AreaText = fmt.Sprintf("%.0f m²", req.AreaM2)
	}
	return cctx
}

// propertyLabel, enum değerini Türkçe etikete çevirir.
func propertyLabel(pt models.PropertyType) string {
	switch pt {
	case models.PropertyApartment:
		return "Daire"
	case models.PropertyVilla:
		return "Villa"
	case models.PropertyLand:
		return "Arsa"
	case models.PropertyOffice:
		return "Ofis"
	default:
		return "Gayrimenkul"
	}
}

// newsletterSubject, bülten için konu satırı üretir.
func newsletterSubject(cctx copyContext) string {
	if cctx.Tone == models.ToneLuxury {
		return fmt.Sprintf("Seçkin Bir Fırsat: %s'da %s", cctx.Location, cctx.PropertyLabel)
	}
	return fmt.Sprintf("Yeni İlan: %s'da %s — %s", cctx.Location, cctx.PropertyLabel, cctx.PriceText)
}

// FormatPriceTL, fiyatı binlik ayraçlı TL metnine çevirir.
// Örn: 4750000 → "4.750.000 TL". Sıfır fiyat "Fiyat için arayınız" döner
// (ilanlarda fiyat gizleme yaygın bir pratiktir).
func FormatPriceTL(price float64) string {
	if price <= 0 {
		return "Fiyat için arayınız"
	}

	n := int64(price)
	s := fmt.Sprintf("%d", n)

	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}

	return b.String() + " TL"
}

// ─── Şablonlar ───────────────────────────────────────────────────────────────
//
// Şablonlar tone'a göre dallanır. Emoji sadece friendly tonda kullanılır,
// luxury ton süslü ama ölçülü bir dil kullanır.

const socialPostTemplate = `{{if eq .Tone "friendly"}}🏡 {{.Location}}'da harika bir {{.PropertyLabel}} sizi bekliyor!{{else if eq .Tone "luxury"}}{{.Location}}'ın en seçkin noktasında, beklentilerin ötesinde bir {{.PropertyLabel}}.{{else}}{{.Location}}'da satılık {{.PropertyLabel}}.{{end}}
{{if .RoomsText}}
{{if eq .Tone "friendly"}}✨ {{.RoomsText}}{{if .AreaText}} | {{.AreaText}}{{end}}{{else}}{{.RoomsText}}{{if .AreaText}}, {{.AreaText}}{{end}}{{end}}{{else if .AreaText}}
{{.AreaText}}{{end}}

{{if eq .Tone "friendly"}}💰 {{.PriceText}}{{else}}{{.PriceText}}{{end}}
{{if .AgentName}}
{{if eq .Tone "friendly"}}📞 Detaylar için: {{.AgentName}}{{if .AgentPhone}} — {{.AgentPhone}}{{end}}{{else}}İletişim: {{.AgentName}}{{if .AgentPhone}} — {{.AgentPhone}}{{end}}{{end}}{{end}}

{{if eq .Tone "friendly"}}#emlak #{{.PropertyLabel}} #satılık{{else if eq .Tone "luxury"}}#luxuryrealestate #emlak{{else}}#emlak #satılık{{end}}`

const adListingTemplate = `{{if eq .Tone "luxury"}}{{.Location}} | Ayrıcalıklı {{.PropertyLabel}}{{else}}{{.Location}} - Satılık {{.PropertyLabel}}{{end}}

{{if eq .Tone "luxury"}}{{.Location}}'ın prestijli konumunda, detaylarıyla fark yaratan bu {{.PropertyLabel}} seçkin alıcısını bekliyor.{{else if eq .Tone "friendly"}}{{.Location}}'da yeni yuvanız olmaya aday bu güzel {{.PropertyLabel}} ile tanışın!{{else}}{{.Location}} bölgesinde satılık {{.PropertyLabel}}.{{end}}

Özellikler:
{{if .RoomsText}}- Oda sayısı: {{.RoomsText}}
{{end}}{{if .AreaText}}- Alan: {{.AreaText}}
{{end}}- Konum: {{.Location}}
- Fiyat: {{.PriceText}}

{{if eq .Tone "luxury"}}Özel sunum ve yerinde inceleme için randevu alınız.{{else if eq .Tone "friendly"}}Gelin birlikte gezelim, sorularınızı yanıtlayalım!{{else}}Detaylı bilgi ve randevu için iletişime geçiniz.{{end}}
{{if .AgentName}}
{{.AgentName}}{{if .AgentPhone}}
{{.AgentPhone}}{{end}}{{end}}`

const newsletterTemplate = `{{if eq .Tone "friendly"}}Merhaba!{{else}}Değerli abonemiz,{{end}}

{{if eq .Tone "luxury"}}Portföyümüze yeni katılan, {{.Location}}'ın ayrıcalıklı konumundaki bu {{.PropertyLabel}} dikkatinizi hak ediyor.{{else if eq .Tone "friendly"}}Bu hafta sizin için harika bir ilan seçtik: {{.Location}}'da bir {{.PropertyLabel}}!{{else}}{{.Location}} bölgesinde yeni bir {{.PropertyLabel}} ilanımızı paylaşmak isteriz.{{end}}

{{if .RoomsText}}Oda sayısı: {{.RoomsText}}
{{end}}{{if .AreaText}}Alan: {{.AreaText}}
{{end}}Fiyat: {{.PriceText}}

{{if eq .Tone "luxury"}}Bu gayrimenkul hakkında özel sunum talep etmek için bize ulaşabilirsiniz.{{else if eq .Tone "friendly"}}İlgileniyorsanız hemen yazın, detayları konuşalım!{{else}}Detaylı bilgi için bizimle iletişime geçebilirsiniz.{{end}}
{{if .AgentName}}
Saygılarımızla,
{{.AgentName}}{{if .AgentPhone}}
{{.AgentPhone}}{{end}}{{end}}`

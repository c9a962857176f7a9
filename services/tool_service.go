// Bu dosya — ToolService: sitedeki araç kataloğu.
//
// Katalog statiktir: araçlar kod ile gelir, DB'de tutulmaz. Yeni araç
// eklemek bir deploy gerektirir — bu bilinçli bir tercihtir, araç eklemek
// zaten yeni handler kodu gerektirir.
package services

import "github.com/akinalp/emlakkit/models"

// ToolService interface'i — araç kataloğu okuma API'si.
type ToolService interface {
	// List, tüm araçları döner.
	List() []models.Tool
	// ListByCategory, kategoriye göre filtreler. Bilinmeyen kategori boş liste döner.
	ListByCategory(category models.ToolCategory) []models.Tool
}

type toolService struct {
	tools []models.Tool
}

// NewToolService, statik katalog ile service oluşturur.
func NewToolService() ToolService {
	return &toolService{tools: toolCatalog}
}

func (s *toolService) List() []models.Tool {
	out := make([]models.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

func (s *toolService) ListByCategory(category models.ToolCategory) []models.Tool {
	out := make([]models.Tool, 0, len(s.tools))
	for _, t := range s.tools {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// toolCatalog — sitedeki tüm araçlar. Slug'lar URL'lerde kullanılır,
// değiştirmek eski linkleri kırar.
var toolCatalog = []models.Tool{
	{
		Slug:        "mortgage",
		Name:        "Konut Kredisi Hesaplayıcı",
		Category:    models.CategoryCalculator,
		Description: "Aylık taksit, toplam geri ödeme ve toplam faiz hesaplar.",
	},
	{
		Slug:        "cashflow",
		Name:        "Kira Getirisi Hesaplayıcı",
		Category:    models.CategoryCalculator,
		Description: "Yatırımlık gayrimenkul için net nakit akışı, cap rate ve cash-on-cash getiri hesaplar.",
	},
	{
		Slug:        "construction",
		Name:        "İnşaat Maliyeti Hesaplayıcı",
		Category:    models.CategoryCalculator,
		Description: "Metrekare bazlı kaba ve ince inşaat maliyeti tahmini yapar.",
	},
	{
		Slug:        "roi",
		Name:        "Al-Sat Getiri Hesaplayıcı",
		Category:    models.CategoryCalculator,
		Description: "Alım, tadilat ve satış rakamlarından kâr ve yıllıklandırılmış getiri hesaplar.",
	},
	{
		Slug:        "rental-tax",
		Name:        "Kira Geliri Vergisi Hesaplayıcı",
		Category:    models.CategoryCalculator,
		Description: "Yıllık kira gelirinden istisna ve gider indirimi sonrası gelir vergisini hesaplar.",
	},
	{
		Slug:        "social-post",
		Name:        "Sosyal Medya Gönderisi Üretici",
		Category:    models.CategoryGenerator,
		Description: "İlan bilgilerinden sosyal medyaya hazır gönderi metni üretir.",
	},
	{
		Slug:        "ad-listing",
		Name:        "İlan Metni Üretici",
		Category:    models.CategoryGenerator,
		Description: "İlan portalları için başlık ve açıklama metni üretir.",
	},
	{
		Slug:        "newsletter",
		Name:        "Email Bülteni Üretici",
		Category:    models.CategoryGenerator,
		Description: "Abonelere gönderilecek ilan tanıtım bülteni üretir, test gönderimi yapabilir.",
	},
}

package models

// ToolCategory, araç kataloğundaki gruplama.
type ToolCategory string

const (
	CategoryCalculator ToolCategory = "calculator"
	CategoryGenerator  ToolCategory = "generator"
)

// Tool, sitedeki bir aracın katalog kaydını temsil eder.
// Katalog statiktir — kod içinde tanımlıdır, DB'de tutulmaz.
// Frontend bu listeden araç sayfalarını ve menüyü üretir.
type Tool struct {
	Slug        string       `json:"slug"` // URL anahtarı (ör: "mortgage")
	Name        string       `json:"name"`
	Category    ToolCategory `json:"category"`
	Description string       `json:"description"`
}

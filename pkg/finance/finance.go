// Package finance — emlak finans hesaplayıcıları.
//
// Buradaki her hesaplayıcı kapalı-form bir aritmetik formüldür:
// sabit bir input struct alır, sabit bir output struct döner.
// I/O yok, state yok, goroutine yok — saf fonksiyonlar.
//
// handlers ↔ services katmanlarından bağımsız leaf package'dır:
// hiçbir proje içi pakete bağımlı değildir, bu sayede hem HTTP handler'dan
// hem testten hem de (gerekirse) CLI'dan doğrudan çağrılabilir.
//
// Para alanları float64'tür ve TL cinsindendir. Bunlar bağlayıcı finansal
// hesaplar değil, kullanıcıya yön gösteren tahmin araçlarıdır — kuruş
// hassasiyeti gerekmez.
package finance

import (
	"fmt"
	"math"
)

// ─── Konut Kredisi (Mortgage) ───

// MortgageInput, konut kredisi hesaplayıcı girdisi.
type MortgageInput struct {
	Principal         float64 `json:"principal"`           // Kredi tutarı (TL)
	AnnualRatePercent float64 `json:"annual_rate_percent"` // Yıllık faiz, yüzde (ör: 36 → %36)
	TermMonths        int     `json:"term_months"`         // Vade, ay
	IncludeSchedule   bool    `json:"include_schedule"`    // true → aylık ödeme planı da döner
}

// Validate, MortgageInput'u kontrol eder.
func (in *MortgageInput) Validate() error {
	if in.Principal <= 0 {
		return fmt.Errorf("principal must be positive")
	}
	if in.AnnualRatePercent < 0 {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if in.TermMonths < 1 || in.TermMonths > 600 {
		return fmt.Errorf("term must be between 1 and 600 months")
	}
	return nil
}

// MortgageOutput, konut kredisi hesaplayıcı çıktısı.
// Schedule sadece IncludeSchedule=true istendiğinde doludur — 360 aylık
// kredide 360 satır döner, her response'ta taşımak gereksiz.
type MortgageOutput struct {
	MonthlyPayment float64           `json:"monthly_payment"`
	TotalPayment   float64           `json:"total_payment"`
	TotalInterest  float64           `json:"total_interest"`
	Schedule       []AmortizationRow `json:"schedule,omitempty"`
}

// AmortizationRow, ödeme planındaki bir ayı temsil eder.
type AmortizationRow struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	InterestPart     float64 `json:"interest_part"`
	PrincipalPart    float64 `json:"principal_part"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Mortgage, eşit taksitli (annüite) kredi ödemesini hesaplar.
//
// Formül: taksit = P * r * (1+r)^n / ((1+r)^n - 1)
// r = aylık faiz oranı, n = vade (ay).
// Faiz sıfırsa taksit düz bölmedir (P/n) — formül 0/0'a düşmesin.
func Mortgage(in MortgageInput) MortgageOutput {
	n := float64(in.TermMonths)
	r := in.AnnualRatePercent / 100 / 12

	var monthly, total float64
	if in.AnnualRatePercent == 0 {
		monthly = in.Principal / n
		total = in.Principal
	} else {
		factor := math.Pow(1+r, n)
		monthly = in.Principal * r * factor / (factor - 1)
		total = monthly * n
	}

	out := MortgageOutput{
		MonthlyPayment: round2(monthly),
		TotalPayment:   round2(total),
		TotalInterest:  round2(total - in.Principal),
	}

	if in.IncludeSchedule {
		out.Schedule = amortize(in.Principal, r, monthly, in.TermMonths)
	}

	return out
}

// amortize, aylık ödeme planını üretir.
// Son ayda kalan bakiye kuruş farkları yüzünden taksitten sapabilir —
// son satır bakiyeyi tam sıfırlayacak şekilde düzeltilir.
func amortize(principal, monthlyRate, payment float64, termMonths int) []AmortizationRow {
	rows := make([]AmortizationRow, 0, termMonths)
	balance := principal

	for month := 1; month <= termMonths; month++ {
		interest := balance * monthlyRate
		principalPart := payment - interest

		if month == termMonths {
			principalPart = balance
		}
		balance -= principalPart

		rows = append(rows, AmortizationRow{
			Month:            month,
			Payment:          round2(interest + principalPart),
			InterestPart:     round2(interest),
			PrincipalPart:    round2(principalPart),
			RemainingBalance: round2(balance),
		})
	}

	return rows
}

// ─── Kira Nakit Akışı (Cash Flow) ───

// CashFlowInput, yatırım amaçlı kiralık mülk nakit akışı girdisi.
type CashFlowInput struct {
	PurchasePrice   float64 `json:"purchase_price"`       // Alış fiyatı (TL)
	DownPayment     float64 `json:"down_payment"`         // Peşinat (TL)
	MonthlyRent     float64 `json:"monthly_rent"`         // Aylık kira geliri (TL)
	MonthlyExpenses float64 `json:"monthly_expenses"`     // Aidat, sigorta, bakım vb. (TL/ay)
	MonthlyLoanPay  float64 `json:"monthly_loan_payment"` // Kredi taksiti (TL/ay, 0 olabilir)
	VacancyPercent  float64 `json:"vacancy_percent"`      // Boşluk oranı, yüzde (ör: 8)
}

// Validate, CashFlowInput'u kontrol eder.
func (in *CashFlowInput) Validate() error {
	if in.PurchasePrice <= 0 {
		return fmt.Errorf("purchase price must be positive")
	}
	if in.DownPayment < 0 || in.DownPayment > in.PurchasePrice {
		return fmt.Errorf("down payment must be between 0 and purchase price")
	}
	if in.MonthlyRent < 0 || in.MonthlyExpenses < 0 || in.MonthlyLoanPay < 0 {
		return fmt.Errorf("rent, expenses and loan payment cannot be negative")
	}
	if in.VacancyPercent < 0 || in.VacancyPercent > 100 {
		return fmt.Errorf("vacancy percent must be between 0 and 100")
	}
	return nil
}

// CashFlowOutput, kiralık mülk nakit akışı çıktısı.
type CashFlowOutput struct {
	EffectiveMonthlyRent float64 `json:"effective_monthly_rent"` // Boşluk düşülmüş kira
	MonthlyCashFlow      float64 `json:"monthly_cash_flow"`
	AnnualCashFlow       float64 `json:"annual_cash_flow"`
	CapRatePercent       float64 `json:"cap_rate_percent"`        // NOI / alış fiyatı
	CashOnCashPercent    float64 `json:"cash_on_cash_percent"`    // Yıllık nakit akışı / peşinat
}

// CashFlow, kiralık mülkün aylık/yıllık nakit akışını ve getiri oranlarını hesaplar.
//
// NOI (Net Operating Income) kredi taksitini İÇERMEZ — cap rate finansman
// yapısından bağımsız bir mülk metriğidir. Cash-on-cash ise taksit sonrası
// gerçek nakit üzerinden, yatırılan peşinata göre hesaplanır.
func CashFlow(in CashFlowInput) CashFlowOutput {
	effectiveRent := in.MonthlyRent * (1 - in.VacancyPercent/100)
	noiMonthly := effectiveRent - in.MonthlyExpenses
	cashMonthly := noiMonthly - in.MonthlyLoanPay

	capRate := noiMonthly * 12 / in.PurchasePrice * 100

	cashOnCash := 0.0
	if in.DownPayment > 0 {
		cashOnCash = cashMonthly * 12 / in.DownPayment * 100
	}

	return CashFlowOutput{
		EffectiveMonthlyRent: round2(effectiveRent),
		MonthlyCashFlow:      round2(cashMonthly),
		AnnualCashFlow:       round2(cashMonthly * 12),
		CapRatePercent:       round2(capRate),
		CashOnCashPercent:    round2(cashOnCash),
	}
}

// ─── İnşaat Maliyeti ───

// ConstructionInput, kaba inşaat maliyet tahmini girdisi.
type ConstructionInput struct {
	AreaM2          float64 `json:"area_m2"`           // Toplam inşaat alanı
	CostPerM2       float64 `json:"cost_per_m2"`       // Birim maliyet (TL/m²)
	FinishingFactor float64 `json:"finishing_factor"`  // İnce işçilik çarpanı (ör: 1.25; 0 → varsayılan)
	SoftCostPercent float64 `json:"soft_cost_percent"` // Proje/ruhsat/mühendislik, yüzde
}

// Validate, ConstructionInput'u kontrol eder.
func (in *ConstructionInput) Validate() error {
	if in.AreaM2 <= 0 {
		return fmt.Errorf("area must be positive")
	}
	if in.CostPerM2 <= 0 {
		return fmt.Errorf("cost per m2 must be positive")
	}
	if in.FinishingFactor < 0 {
		return fmt.Errorf("finishing factor cannot be negative")
	}
	if in.SoftCostPercent < 0 || in.SoftCostPercent > 100 {
		return fmt.Errorf("soft cost percent must be between 0 and 100")
	}
	return nil
}

// ConstructionOutput, inşaat maliyet tahmini çıktısı.
type ConstructionOutput struct {
	HardCost  float64 `json:"hard_cost"`  // Kaba + ince yapı
	SoftCost  float64 `json:"soft_cost"`  // Proje, ruhsat, mühendislik
	TotalCost float64 `json:"total_cost"`
	CostPerM2 float64 `json:"cost_per_m2"` // Toplam / alan
}

// Construction, alan x birim maliyet üzerinden toplam inşaat maliyetini tahmin eder.
func Construction(in ConstructionInput) ConstructionOutput {
	factor := in.FinishingFactor
	if factor == 0 {
		factor = 1.25 // sektör ortalaması ince işçilik payı
	}

	hard := in.AreaM2 * in.CostPerM2 * factor
	soft := hard * in.SoftCostPercent / 100
	total := hard + soft

	return ConstructionOutput{
		HardCost:  round2(hard),
		SoftCost:  round2(soft),
		TotalCost: round2(total),
		CostPerM2: round2(total / in.AreaM2),
	}
}

// ─── Al-Sat Getirisi (Flip ROI) ───

// FlipROIInput, al-yenile-sat yatırımı getiri girdisi.
type FlipROIInput struct {
	PurchasePrice  float64 `json:"purchase_price"`  // Alış fiyatı (TL)
	RenovationCost float64 `json:"renovation_cost"` // Yenileme maliyeti (TL)
	SellingPrice   float64 `json:"selling_price"`   // Hedef satış fiyatı (TL)
	SellingCosts   float64 `json:"selling_costs"`   // Tapu, komisyon vb. (TL)
	HoldingMonths  int     `json:"holding_months"`  // Elde tutma süresi (ay)
}

// Validate, FlipROIInput'u kontrol eder.
func (in *FlipROIInput) Validate() error {
	if in.PurchasePrice <= 0 {
		return fmt.Errorf("purchase price must be positive")
	}
	if in.RenovationCost < 0 || in.SellingCosts < 0 {
		return fmt.Errorf("costs cannot be negative")
	}
	if in.SellingPrice <= 0 {
		return fmt.Errorf("selling price must be positive")
	}
	if in.HoldingMonths < 1 || in.HoldingMonths > 120 {
		return fmt.Errorf("holding months must be between 1 and 120")
	}
	return nil
}

// FlipROIOutput, al-sat getirisi çıktısı.
type FlipROIOutput struct {
	TotalInvestment      float64 `json:"total_investment"`
	NetProfit            float64 `json:"net_profit"`
	ROIPercent           float64 `json:"roi_percent"`
	AnnualizedROIPercent float64 `json:"annualized_roi_percent"`
}

// FlipROI, al-yenile-sat yatırımının net kârını ve getiri oranını hesaplar.
// Yıllıklaştırma basit orantıdır (ROI * 12 / ay) — bileşik değil;
// kısa vadeli projelerde karşılaştırma için yeterli.
func FlipROI(in FlipROIInput) FlipROIOutput {
	investment := in.PurchasePrice + in.RenovationCost
	profit := in.SellingPrice - in.SellingCosts - investment
	roi := profit / investment * 100
	annualized := roi * 12 / float64(in.HoldingMonths)

	return FlipROIOutput{
		TotalInvestment:      round2(investment),
		NetProfit:            round2(profit),
		ROIPercent:           round2(roi),
		AnnualizedROIPercent: round2(annualized),
	}
}

// ─── Kira Geliri Vergisi ───

// RentalTaxInput, yıllık kira geliri vergi tahmini girdisi.
//
// Basitleştirilmiş model: istisna tutarı düşülür, kalan gelire götürü gider
// oranı uygulanır, matrah artan oranlı dilimlere vurulur.
// Dilim ve istisna değerleri input'tur — her yıl değişir, koda gömülmez.
type RentalTaxInput struct {
	AnnualRent      float64      `json:"annual_rent"`      // Yıllık kira geliri (TL)
	ExemptionAmount float64      `json:"exemption_amount"` // İstisna tutarı (TL)
	LumpSumPercent  float64      `json:"lump_sum_percent"` // Götürü gider, yüzde (ör: 15)
	Brackets        []TaxBracket `json:"brackets"`         // Artan oranlı dilimler (sıralı)
}

// TaxBracket, bir vergi dilimini temsil eder.
// UpTo = 0 → üst sınırsız (son dilim).
type TaxBracket struct {
	UpTo        float64 `json:"up_to"`
	RatePercent float64 `json:"rate_percent"`
}

// Validate, RentalTaxInput'u kontrol eder.
func (in *RentalTaxInput) Validate() error {
	if in.AnnualRent < 0 {
		return fmt.Errorf("annual rent cannot be negative")
	}
	if in.ExemptionAmount < 0 {
		return fmt.Errorf("exemption cannot be negative")
	}
	if in.LumpSumPercent < 0 || in.LumpSumPercent > 100 {
		return fmt.Errorf("lump sum percent must be between 0 and 100")
	}
	if len(in.Brackets) == 0 {
		return fmt.Errorf("at least one tax bracket is required")
	}
	prev := 0.0
	for i, b := range in.Brackets {
		last := i == len(in.Brackets)-1
		if b.RatePercent < 0 || b.RatePercent > 100 {
			return fmt.Errorf("bracket rate must be between 0 and 100")
		}
		if !last && b.UpTo <= prev {
			return fmt.Errorf("brackets must be in increasing order")
		}
		prev = b.UpTo
	}
	return nil
}

// RentalTaxOutput, kira geliri vergi tahmini çıktısı.
type RentalTaxOutput struct {
	TaxableIncome    float64 `json:"taxable_income"`
	EstimatedTax     float64 `json:"estimated_tax"`
	EffectivePercent float64 `json:"effective_rate_percent"`
	NetIncome        float64 `json:"net_income"`
}

// RentalTax, yıllık kira gelirinin tahmini vergisini hesaplar.
//
// Matrah = (gelir - istisna) * (1 - götürü gider oranı).
// Matrah sıfırın altına düşmez. Vergi, dilimlere marjinal olarak uygulanır.
func RentalTax(in RentalTaxInput) RentalTaxOutput {
	base := in.AnnualRent - in.ExemptionAmount
	if base < 0 {
		base = 0
	}
	taxable := base * (1 - in.LumpSumPercent/100)

	tax := 0.0
	prev := 0.0
	remaining := taxable
	for i, b := range in.Brackets {
		last := i == len(in.Brackets)-1

		var width float64
		if last {
			width = remaining
		} else {
			width = math.Min(remaining, b.UpTo-prev)
		}
		if width <= 0 {
			break
		}

		tax += width * b.RatePercent / 100
		remaining -= width
		prev = b.UpTo
	}

	effective := 0.0
	if in.AnnualRent > 0 {
		effective = tax / in.AnnualRent * 100
	}

	return RentalTaxOutput{
		TaxableIncome:    round2(taxable),
		EstimatedTax:     round2(tax),
		EffectivePercent: round2(effective),
		NetIncome:        round2(in.AnnualRent - tax),
	}
}

// round2, TL tutarlarını kuruşa (2 ondalık) yuvarlar.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Bu dosya — CalculatorHandler: finansal hesaplayıcı endpoint'leri.
//
// Hesaplayıcılar stateless ve deterministiktir — service katmanı yoktur,
// handler doğrudan pkg/finance'ı çağırır. Araya sadece veri taşıyacak bir
// service koymak katman için katman olurdu.
//
// Her endpoint aynı kalıptır: body'yi decode et → Validate → hesapla → dön.
// finance fonksiyonları doğrulanmış input ile hata üretmez, bu yüzden
// hesap çağrısının error dönüşü yoktur.
//
// Tüm endpoint'ler public'tir: hesaplayıcılar sitenin ana çekim gücüdür,
// login istemek ziyaretçiyi kaçırır.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/pkg/finance"
)

// CalculatorHandler, hesaplayıcı endpoint'lerini yöneten struct.
// Dependency'si yoktur — hesaplar pure function'dır.
type CalculatorHandler struct{}

// NewCalculatorHandler, constructor.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Mortgage godoc
// POST /api/calculators/mortgage
// Konut kredisi: aylık taksit, toplam geri ödeme, toplam faiz.
func (h *CalculatorHandler) Mortgage(w http.ResponseWriter, r *http.Request) {
	var in finance.MortgageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg.JSON(w, http.StatusOK, finance.Mortgage(in))
}

// CashFlow godoc
// POST /api/calculators/cashflow
// Kira getirisi: net nakit akışı, cap rate, cash-on-cash.
func (h *CalculatorHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	var in finance.CashFlowInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg.JSON(w, http.StatusOK, finance.CashFlow(in))
}

// Construction godoc
// POST /api/calculators/construction
// İnşaat maliyeti tahmini.
func (h *CalculatorHandler) Construction(w http.ResponseWriter, r *http.Request) {
	var in finance.ConstructionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg.JSON(w, http.StatusOK, finance.Construction(in))
}

// FlipROI godoc
// POST /api/calculators/roi
// Al-sat getirisi: kâr, ROI, yıllıklandırılmış ROI.
func (h *CalculatorHandler) FlipROI(w http.ResponseWriter, r *http.Request) {
	var in finance.FlipROIInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg.JSON(w, http.StatusOK, finance.FlipROI(in))
}

// RentalTax godoc
// POST /api/calculators/rental-tax
// Kira geliri vergisi: istisna, gider indirimi, dilimli vergi.
func (h *CalculatorHandler) RentalTax(w http.ResponseWriter, r *http.Request) {
	var in finance.RentalTaxInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg.JSON(w, http.StatusOK, finance.RentalTax(in))
}

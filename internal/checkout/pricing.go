package checkout

import (
	"github.com/everbuy/internal/cart"
	"github.com/everbuy/internal/models"

	"github.com/shopspring/decimal"
)

// Pricing 运费与税率规则
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	FlatShipping          decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPricing 默认规则：满 100 免运费，否则 9.99；税率 8%
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromInt(100),
		FlatShipping:          decimal.RequireFromString("9.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// SummaryLine 结算摘要行
type SummaryLine struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
	LineTotal models.Money `json:"line_total"`
}

// StepInfo 步骤进度
type StepInfo struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// Summary 结算摘要，每次按购物车实时计算，不保存
type Summary struct {
	Items        []SummaryLine `json:"items"`
	Subtotal     models.Money  `json:"subtotal"`
	ShippingCost models.Money  `json:"shipping_cost"`
	FreeShipping bool          `json:"free_shipping"`
	Tax          models.Money  `json:"tax"`
	FinalTotal   models.Money  `json:"final_total"`
}

// Quote 计算运费、税费与总额
func (p Pricing) Quote(state cart.State) Summary {
	subtotal := state.Total.Decimal
	shipping := p.FlatShipping
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(p.TaxRate)
	final := subtotal.Add(shipping).Add(tax)

	lines := make([]SummaryLine, 0, len(state.Items))
	for _, item := range state.Items {
		lines = append(lines, SummaryLine{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	return Summary{
		Items:        lines,
		Subtotal:     models.NewMoneyFromDecimal(subtotal),
		ShippingCost: models.NewMoneyFromDecimal(shipping),
		FreeShipping: shipping.IsZero(),
		Tax:          models.NewMoneyFromDecimal(tax),
		FinalTotal:   models.NewMoneyFromDecimal(final),
	}
}

package checkout

import (
	"strings"

	"github.com/everbuy/internal/constants"
)

// Draft 结算草稿（不持久化，不做字段校验）
type Draft struct {
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number"`
	ExpiryDate    string `json:"expiry_date"`
	CVV           string `json:"cvv"`
	NameOnCard    string `json:"name_on_card"`
	SaveInfo      bool   `json:"save_info"`
}

// NewDraft 创建带默认值的空草稿
func NewDraft() Draft {
	return Draft{
		Country:       constants.CheckoutDefaultCountry,
		PaymentMethod: constants.PaymentMethodCard,
	}
}

// DraftPatch 草稿局部更新，nil 字段保持不变
type DraftPatch struct {
	Email         *string `json:"email"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zip_code"`
	Country       *string `json:"country"`
	PaymentMethod *string `json:"payment_method"`
	CardNumber    *string `json:"card_number"`
	ExpiryDate    *string `json:"expiry_date"`
	CVV           *string `json:"cvv"`
	NameOnCard    *string `json:"name_on_card"`
	SaveInfo      *bool   `json:"save_info"`
}

// ValidPaymentMethod 支付方式是否在允许范围内
func ValidPaymentMethod(method string) bool {
	switch method {
	case constants.PaymentMethodCard, constants.PaymentMethodPaypal:
		return true
	default:
		return false
	}
}

// apply 合并补丁；支付方式非法时不修改草稿
func (d Draft) apply(p DraftPatch) (Draft, error) {
	if p.PaymentMethod != nil {
		method := strings.ToLower(strings.TrimSpace(*p.PaymentMethod))
		if !ValidPaymentMethod(method) {
			return d, ErrPaymentMethodInvalid
		}
		d.PaymentMethod = method
	}
	setString(&d.Email, p.Email)
	setString(&d.FirstName, p.FirstName)
	setString(&d.LastName, p.LastName)
	setString(&d.Address, p.Address)
	setString(&d.City, p.City)
	setString(&d.State, p.State)
	setString(&d.ZipCode, p.ZipCode)
	setString(&d.Country, p.Country)
	setString(&d.CardNumber, p.CardNumber)
	setString(&d.ExpiryDate, p.ExpiryDate)
	setString(&d.CVV, p.CVV)
	setString(&d.NameOnCard, p.NameOnCard)
	if p.SaveInfo != nil {
		d.SaveInfo = *p.SaveInfo
	}
	return d, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

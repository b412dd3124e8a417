package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Product – immutable value object
// ---------------------------------------------------------------------------

// Product identifies the onboarding product line an application belongs to.
type Product struct {
	value string
}

const (
	productBankAccount = "BANK_ACCOUNT"
	productCreditCard  = "CREDIT_CARD"
	productLoan        = "LOAN"
	productInsurance   = "INSURANCE"
	productInvestment  = "INVESTMENT"
)

var (
	ProductBankAccount = Product{value: productBankAccount}
	ProductCreditCard  = Product{value: productCreditCard}
	ProductLoan        = Product{value: productLoan}
	ProductInsurance   = Product{value: productInsurance}
	ProductInvestment  = Product{value: productInvestment}
)

var validProducts = map[string]Product{
	productBankAccount: ProductBankAccount,
	productCreditCard:  ProductCreditCard,
	productLoan:        ProductLoan,
	productInsurance:   ProductInsurance,
	productInvestment:  ProductInvestment,
}

// NewProduct creates a Product from a raw string.
func NewProduct(s string) (Product, error) {
	v, ok := validProducts[s]
	if !ok {
		return Product{}, fmt.Errorf("unknown product: %q", s)
	}
	return v, nil
}

// String returns the string representation of the product.
func (p Product) String() string { return p.value }

// IsZero returns true if the product has not been initialised.
func (p Product) IsZero() bool { return p.value == "" }

// Equal returns true when both products carry the same value.
func (p Product) Equal(other Product) bool { return p.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (p Product) MarshalText() ([]byte, error) { return []byte(p.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Product) UnmarshalText(data []byte) error {
	v, err := NewProduct(string(data))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

package service

import (
	"fmt"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// Assessor dispatches a draft to its product's engine and flattens the
// product-specific result into the neutral Assessment snapshot persisted on
// the application. Each product keeps its own polarity; the snapshot only
// ever carries that product's score and band label.
type Assessor struct {
	account   *AccountRiskEngine
	card      *CardApprovalEngine
	insurance *InsuranceRiskEngine
	loan      *LoanApprovalEngine
	investor  *InvestorProfiler
}

// NewAssessor wires all five product engines.
func NewAssessor() *Assessor {
	return &Assessor{
		account:   NewAccountRiskEngine(),
		card:      NewCardApprovalEngine(),
		insurance: NewInsuranceRiskEngine(),
		loan:      NewLoanApprovalEngine(),
		investor:  NewInvestorProfiler(),
	}
}

// Assess evaluates the draft with the engine for its product.
func (a *Assessor) Assess(d model.Draft) (model.Assessment, error) {
	switch {
	case d.Product.Equal(valueobject.ProductBankAccount):
		r := a.account.Evaluate(d)
		return model.Assessment{Score: r.RiskScore, Category: r.Band.String(), Reasons: r.Reasons}, nil

	case d.Product.Equal(valueobject.ProductCreditCard):
		r := a.card.Evaluate(d)
		return model.Assessment{Score: r.ApprovalScore, Category: r.Band.String(), Reasons: r.Reasons}, nil

	case d.Product.Equal(valueobject.ProductInsurance):
		r := a.insurance.Evaluate(d)
		return model.Assessment{Score: r.RiskScore, Category: r.Band.String(), Reasons: r.Reasons}, nil

	case d.Product.Equal(valueobject.ProductLoan):
		r := a.loan.Evaluate(d)
		return model.Assessment{Score: r.ApprovalScore, Category: r.RiskGrade.String(), Reasons: r.Reasons}, nil

	case d.Product.Equal(valueobject.ProductInvestment):
		r := a.investor.Evaluate(d)
		return model.Assessment{Score: r.Points, Category: r.Profile.String(), Reasons: r.Reasons}, nil

	default:
		return model.Assessment{}, fmt.Errorf("no scoring engine for product %q", d.Product.String())
	}
}

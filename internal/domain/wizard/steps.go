package wizard

import (
	"fmt"

	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// Step tables per product. The step count is fixed for each product;
// conditional branches only change the required field set inside a step.

var bankAccountSteps = []Step{
	{ID: "personal", Title: "Personal Details", Validate: validatePersonal},
	{ID: "address", Title: "Residential Address", Validate: validateAddress},
	{ID: "employment", Title: "Employment & Income", Validate: validateEmployment},
	{ID: "kyc", Title: "KYC Documents", Validate: validateKYC},
	{ID: "account_options", Title: "Account Preferences", Validate: validateAccountOptions},
	{ID: "review", Title: "Review & Submit", Validate: validateReview},
}

var creditCardSteps = []Step{
	{ID: "personal", Title: "Personal Details", Validate: validatePersonal},
	{ID: "employment", Title: "Employment & Income", Validate: validateEmployment},
	{ID: "kyc", Title: "KYC Documents", Validate: validateKYC},
	{ID: "card_options", Title: "Card Preferences", Validate: validateCardOptions},
	{ID: "review", Title: "Review & Submit", Validate: validateReview},
}

var loanSteps = []Step{
	{ID: "personal", Title: "Personal Details", Validate: validatePersonal},
	{ID: "address", Title: "Residential Address", Validate: validateAddress},
	{ID: "employment", Title: "Employment & Income", Validate: validateEmployment},
	{ID: "loan_details", Title: "Loan Details", Validate: validateLoanDetails},
	{ID: "review", Title: "Review & Submit", Validate: validateReview},
}

var insuranceSteps = []Step{
	{ID: "personal", Title: "Personal Details", Validate: validatePersonal},
	{ID: "health", Title: "Health Profile", Validate: validateHealth},
	{ID: "coverage", Title: "Coverage Selection", Validate: validateCoverage},
	{ID: "review", Title: "Review & Submit", Validate: validateReview},
}

var investmentSteps = []Step{
	{ID: "personal", Title: "Personal Details", Validate: validatePersonal},
	{ID: "questionnaire", Title: "Investor Questionnaire", Validate: validateQuestionnaire},
	{ID: "review", Title: "Review & Submit", Validate: validateReview},
}

// StepsFor returns the ordered step table for a product.
func StepsFor(product valueobject.Product) ([]Step, error) {
	switch {
	case product.Equal(valueobject.ProductBankAccount):
		return bankAccountSteps, nil
	case product.Equal(valueobject.ProductCreditCard):
		return creditCardSteps, nil
	case product.Equal(valueobject.ProductLoan):
		return loanSteps, nil
	case product.Equal(valueobject.ProductInsurance):
		return insuranceSteps, nil
	case product.Equal(valueobject.ProductInvestment):
		return investmentSteps, nil
	default:
		return nil, fmt.Errorf("no wizard steps for product %q", product.String())
	}
}

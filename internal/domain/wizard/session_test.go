package wizard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

func investmentSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(valueobject.ProductInvestment)
	require.NoError(t, err)
	return s
}

func fillPersonal(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.ApplyPatch(model.DraftPatch{
		Personal: &model.PersonalDetails{
			FirstName: "Priya",
			LastName:  "Sharma",
			Email:     "priya@example.com",
			Phone:     "9876543210",
		},
	}))
}

func TestStepsFor(t *testing.T) {
	tests := []struct {
		product valueobject.Product
		count   int
	}{
		{valueobject.ProductBankAccount, 6},
		{valueobject.ProductCreditCard, 5},
		{valueobject.ProductLoan, 5},
		{valueobject.ProductInsurance, 4},
		{valueobject.ProductInvestment, 3},
	}

	for _, tt := range tests {
		t.Run(tt.product.String(), func(t *testing.T) {
			steps, err := StepsFor(tt.product)
			require.NoError(t, err)
			assert.Len(t, steps, tt.count)
			assert.Equal(t, "personal", steps[0].ID)
			assert.Equal(t, "review", steps[len(steps)-1].ID)
		})
	}

	_, err := StepsFor(valueobject.Product{})
	assert.Error(t, err)
}

func TestNewSession(t *testing.T) {
	s := investmentSession(t)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 1, s.CurrentStep())
	assert.Equal(t, 3, s.TotalSteps())
	assert.True(t, s.Product().Equal(valueobject.ProductInvestment))
	assert.False(t, s.Submitted())
}

func TestSession_Next(t *testing.T) {
	t.Run("invalid step blocks and reports field errors", func(t *testing.T) {
		s := investmentSession(t)

		fieldErrs, err := s.Next()
		require.NoError(t, err)
		assert.NotEmpty(t, fieldErrs)
		assert.Equal(t, 1, s.CurrentStep(), "must stay on the failing step")
		assert.Equal(t, fieldErrs, s.Errors())
	})

	t.Run("valid step advances and clears errors", func(t *testing.T) {
		s := investmentSession(t)
		_, _ = s.Next() // record errors first
		fillPersonal(t, s)

		fieldErrs, err := s.Next()
		require.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.Equal(t, 2, s.CurrentStep())
		assert.Empty(t, s.Errors())
	})

	t.Run("clamped at the last step", func(t *testing.T) {
		s := investmentSession(t)
		fillPersonal(t, s)
		_, err := s.Next()
		require.NoError(t, err)
		require.NoError(t, s.ApplyPatch(model.DraftPatch{
			Investment: &model.InvestmentOptions{
				TimeHorizon:     model.HorizonLong,
				RiskTolerance:   model.ToleranceHigh,
				ExperienceLevel: model.ExperienceExperienced,
			},
		}))
		_, err = s.Next()
		require.NoError(t, err)
		require.Equal(t, 3, s.CurrentStep())

		// review fails without consent, so a further Next stays put
		fieldErrs, err := s.Next()
		require.NoError(t, err)
		assert.NotEmpty(t, fieldErrs)
		assert.Equal(t, 3, s.CurrentStep())

		consent := true
		require.NoError(t, s.ApplyPatch(model.DraftPatch{Consented: &consent}))
		fieldErrs, err = s.Next()
		require.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.Equal(t, 3, s.CurrentStep(), "last step never overflows")
	})
}

func TestSession_Back(t *testing.T) {
	s := investmentSession(t)
	fillPersonal(t, s)
	_, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, 2, s.CurrentStep())

	// leaving an incomplete step backwards is always allowed
	require.NoError(t, s.Back())
	assert.Equal(t, 1, s.CurrentStep())

	// no-op on the first step
	require.NoError(t, s.Back())
	assert.Equal(t, 1, s.CurrentStep())
}

func TestSession_JumpTo(t *testing.T) {
	s := investmentSession(t)
	fillPersonal(t, s)
	_, err := s.Next()
	require.NoError(t, err)
	require.NoError(t, s.ApplyPatch(model.DraftPatch{
		Investment: &model.InvestmentOptions{
			TimeHorizon:     model.HorizonShort,
			RiskTolerance:   model.ToleranceLow,
			ExperienceLevel: model.ExperienceNone,
		},
	}))
	_, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, 3, s.CurrentStep())

	assert.ErrorIs(t, s.JumpTo(3), ErrForwardJump, "current step is not a completed step")
	assert.ErrorIs(t, s.JumpTo(4), ErrForwardJump)
	assert.ErrorIs(t, s.JumpTo(0), ErrForwardJump)

	require.NoError(t, s.JumpTo(1))
	assert.Equal(t, 1, s.CurrentStep())
}

func TestSession_Freeze(t *testing.T) {
	t.Run("rejected before the last step", func(t *testing.T) {
		s := investmentSession(t)
		_, _, err := s.Freeze()
		assert.ErrorIs(t, err, ErrNotLastStep)
	})

	t.Run("rejected when review validation fails", func(t *testing.T) {
		s := investmentSession(t)
		fillPersonal(t, s)
		_, err := s.Next()
		require.NoError(t, err)
		require.NoError(t, s.ApplyPatch(model.DraftPatch{
			Investment: &model.InvestmentOptions{
				TimeHorizon:     model.HorizonShort,
				RiskTolerance:   model.ToleranceLow,
				ExperienceLevel: model.ExperienceNone,
			},
		}))
		_, err = s.Next()
		require.NoError(t, err)

		_, fieldErrs, err := s.Freeze()
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.NotEmpty(t, fieldErrs)
		assert.False(t, s.Submitted(), "failed freeze keeps the session editable")
	})

	t.Run("returns the draft and stays editable until marked", func(t *testing.T) {
		s := investmentSession(t)
		fillPersonal(t, s)
		_, err := s.Next()
		require.NoError(t, err)
		require.NoError(t, s.ApplyPatch(model.DraftPatch{
			Investment: &model.InvestmentOptions{
				TimeHorizon:     model.HorizonLong,
				RiskTolerance:   model.ToleranceHigh,
				ExperienceLevel: model.ExperienceExperienced,
			},
		}))
		_, err = s.Next()
		require.NoError(t, err)
		consent := true
		require.NoError(t, s.ApplyPatch(model.DraftPatch{Consented: &consent}))

		draft, fieldErrs, err := s.Freeze()
		require.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.True(t, draft.Consented)
		assert.False(t, s.Submitted(), "a failed save must leave the draft intact")

		// simulate the save failing once: the draft is still editable
		require.NoError(t, s.ApplyPatch(model.DraftPatch{
			Personal: &model.PersonalDetails{
				FirstName: "Asha", LastName: "Verma",
				Email: "asha@example.com", Phone: "9876500000",
			},
		}))

		s.MarkSubmitted()
		assert.True(t, s.Submitted())
		assert.ErrorIs(t, s.ApplyPatch(model.DraftPatch{}), ErrAlreadySubmitted)
		_, err = s.Next()
		assert.ErrorIs(t, err, ErrAlreadySubmitted)
		assert.ErrorIs(t, s.Back(), ErrAlreadySubmitted)
		assert.ErrorIs(t, s.JumpTo(1), ErrAlreadySubmitted)
		_, _, err = s.Freeze()
		assert.ErrorIs(t, err, ErrAlreadySubmitted)
	})
}

func TestConditionalRequiredFields(t *testing.T) {
	t.Run("joint account requires the joint holder block", func(t *testing.T) {
		d := model.NewDraft(valueobject.ProductBankAccount)
		d.Account.Mode = model.AccountModeSingle
		assert.Empty(t, validateAccountOptions(d))

		d.Account.Mode = model.AccountModeJoint
		errs := validateAccountOptions(d)
		assert.Len(t, errs, 2)

		d.Account.JointHolderName = "Rahul Sharma"
		d.Account.JointHolderPAN = "FGHIJ5678K"
		assert.Empty(t, validateAccountOptions(d))
	})

	t.Run("salaried employment requires an employer name", func(t *testing.T) {
		d := model.NewDraft(valueobject.ProductCreditCard)
		d.Employment.Type = model.EmploymentSelfEmployed
		d.Employment.MonthlyIncome = decimal.NewFromInt(40_000)
		assert.Empty(t, validateEmployment(d))

		d.Employment.Type = model.EmploymentSalaried
		errs := validateEmployment(d)
		require.Len(t, errs, 1)
		assert.Equal(t, "employment.employer_name", errs[0].Field)
	})

	t.Run("secured loan requires collateral", func(t *testing.T) {
		d := model.NewDraft(valueobject.ProductLoan)
		d.Loan.RequestedAmount = decimal.NewFromInt(500_000)
		d.Loan.TermMonths = 36
		assert.Empty(t, validateLoanDetails(d))

		d.Loan.Secured = true
		errs := validateLoanDetails(d)
		require.Len(t, errs, 1)
		assert.Equal(t, "loan.collateral_value", errs[0].Field)
	})

	t.Run("malformed kyc numbers pass the step gate", func(t *testing.T) {
		d := model.NewDraft(valueobject.ProductBankAccount)
		d.KYC.PANNumber = "NOT_A_PAN"
		d.KYC.AadhaarNumber = "123"
		assert.Empty(t, validateKYC(d), "format problems are scored, not gated")
	})
}

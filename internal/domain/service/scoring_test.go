package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

func cleanKYC() model.KYCDetails {
	return model.KYCDetails{PANNumber: "ABCDE1234F", AadhaarNumber: "123456789012"}
}

func TestAccountRiskEngine_Evaluate(t *testing.T) {
	engine := NewAccountRiskEngine()

	tests := []struct {
		name        string
		draft       model.Draft
		wantScore   int
		wantBand    valueobject.RiskBand
		wantReasons int
	}{
		{
			name: "clean salaried applicant scores zero",
			draft: model.Draft{
				Product:    valueobject.ProductBankAccount,
				Employment: model.EmploymentDetails{Type: model.EmploymentSalaried},
				KYC:        cleanKYC(),
				Account:    model.AccountOptions{MonthlyTransactionVolume: decimal.NewFromInt(50_000)},
			},
			wantScore:   0,
			wantBand:    valueobject.RiskBandLow,
			wantReasons: 0,
		},
		{
			name: "all penalties stack to 90 HIGH",
			draft: model.Draft{
				Product:    valueobject.ProductBankAccount,
				Employment: model.EmploymentDetails{Type: model.EmploymentSelfEmployed},
				KYC:        model.KYCDetails{PANNumber: "ABCDE1234", AadhaarNumber: "12345678901"},
				Account:    model.AccountOptions{MonthlyTransactionVolume: decimal.NewFromInt(250_000)},
			},
			wantScore:   90,
			wantBand:    valueobject.RiskBandHigh,
			wantReasons: 4,
		},
		{
			name: "volume at threshold does not fire",
			draft: model.Draft{
				Product:    valueobject.ProductBankAccount,
				Employment: model.EmploymentDetails{Type: model.EmploymentSalaried},
				KYC:        cleanKYC(),
				Account:    model.AccountOptions{MonthlyTransactionVolume: decimal.NewFromInt(200_000)},
			},
			wantScore:   0,
			wantBand:    valueobject.RiskBandLow,
			wantReasons: 0,
		},
		{
			name: "self-employed with bad aadhaar lands MEDIUM",
			draft: model.Draft{
				Product:    valueobject.ProductBankAccount,
				Employment: model.EmploymentDetails{Type: model.EmploymentSelfEmployed},
				KYC:        model.KYCDetails{PANNumber: "ABCDE1234F", AadhaarNumber: "1234"},
			},
			wantScore:   35,
			wantBand:    valueobject.RiskBandMedium,
			wantReasons: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(tt.draft)
			assert.Equal(t, tt.wantScore, got.RiskScore)
			assert.True(t, got.Band.Equal(tt.wantBand), "band %s", got.Band.String())
			assert.Len(t, got.Reasons, tt.wantReasons)
		})
	}
}

func TestCardApprovalEngine_Evaluate(t *testing.T) {
	engine := NewCardApprovalEngine()

	tests := []struct {
		name        string
		draft       model.Draft
		wantScore   int
		wantBand    valueobject.ApprovalBand
		wantReasons int
	}{
		{
			name: "every positive rule caps at 100 EXCELLENT",
			draft: model.Draft{
				Product: valueobject.ProductCreditCard,
				Employment: model.EmploymentDetails{
					Type:          model.EmploymentSalaried,
					MonthlyIncome: decimal.NewFromInt(60_000),
				},
				Card: model.CardOptions{ExistingCreditCards: true, ResidenceType: model.ResidenceOwned},
			},
			wantScore:   100,
			wantBand:    valueobject.ApprovalBandExcellent,
			wantReasons: 4,
		},
		{
			name: "no rule fires leaves the base score",
			draft: model.Draft{
				Product:    valueobject.ProductCreditCard,
				Employment: model.EmploymentDetails{Type: model.EmploymentStudent},
				Card:       model.CardOptions{ResidenceType: model.ResidenceRented},
			},
			wantScore:   50,
			wantBand:    valueobject.ApprovalBandGood,
			wantReasons: 0,
		},
		{
			name: "income exactly at threshold does not fire",
			draft: model.Draft{
				Product: valueobject.ProductCreditCard,
				Employment: model.EmploymentDetails{
					Type:          model.EmploymentRetired,
					MonthlyIncome: decimal.NewFromInt(50_000),
				},
				Card: model.CardOptions{ResidenceType: model.ResidenceRented},
			},
			wantScore:   50,
			wantBand:    valueobject.ApprovalBandGood,
			wantReasons: 0,
		},
		{
			name: "salaried renter with one card lands GOOD",
			draft: model.Draft{
				Product: valueobject.ProductCreditCard,
				Employment: model.EmploymentDetails{
					Type:          model.EmploymentSalaried,
					MonthlyIncome: decimal.NewFromInt(30_000),
				},
				Card: model.CardOptions{ExistingCreditCards: true, ResidenceType: model.ResidenceRented},
			},
			wantScore:   70,
			wantBand:    valueobject.ApprovalBandGood,
			wantReasons: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(tt.draft)
			assert.Equal(t, tt.wantScore, got.ApprovalScore)
			assert.True(t, got.Band.Equal(tt.wantBand), "band %s", got.Band.String())
			assert.Len(t, got.Reasons, tt.wantReasons)
		})
	}
}

func TestInsuranceRiskEngine_Evaluate(t *testing.T) {
	engine := NewInsuranceRiskEngine()

	healthy := func() model.Draft {
		return model.Draft{
			Product: valueobject.ProductInsurance,
			Insurance: model.InsuranceOptions{
				Age:            28,
				HeightCM:       175,
				WeightKG:       70,
				CoverageAmount: decimal.NewFromInt(1_000_000),
				AnnualIncome:   decimal.NewFromInt(600_000),
			},
		}
	}

	t.Run("young healthy non-smoker stays at the base", func(t *testing.T) {
		got := engine.Evaluate(healthy())
		assert.Equal(t, 10, got.RiskScore)
		assert.True(t, got.Band.Equal(valueobject.RiskBandLow))
		assert.Empty(t, got.Reasons)
	})

	t.Run("smoker over 45 with conditions lands HIGH", func(t *testing.T) {
		d := healthy()
		d.Insurance.Age = 52
		d.Insurance.Smoker = true
		d.Insurance.MedicalConditions = []string{"diabetes"}
		got := engine.Evaluate(d)
		// 10 + 15 + 25 + 20
		assert.Equal(t, 70, got.RiskScore)
		assert.True(t, got.Band.Equal(valueobject.RiskBandHigh))
		assert.Len(t, got.Reasons, 3)
	})

	t.Run("age bands are mutually exclusive", func(t *testing.T) {
		d := healthy()
		d.Insurance.Age = 45
		got := engine.Evaluate(d)
		assert.Equal(t, 15, got.RiskScore)
		assert.Len(t, got.Reasons, 1)

		d.Insurance.Age = 46
		got = engine.Evaluate(d)
		assert.Equal(t, 25, got.RiskScore)
		assert.Len(t, got.Reasons, 1)
	})

	t.Run("missing height and weight is treated as out-of-range BMI", func(t *testing.T) {
		d := healthy()
		d.Insurance.HeightCM = 0
		d.Insurance.WeightKG = 0
		got := engine.Evaluate(d)
		assert.Equal(t, 20, got.RiskScore)
		assert.Len(t, got.Reasons, 1)
	})

	t.Run("coverage against unknown income fires the ratio rule", func(t *testing.T) {
		d := healthy()
		d.Insurance.AnnualIncome = decimal.Zero
		got := engine.Evaluate(d)
		assert.Equal(t, 25, got.RiskScore)
		assert.Len(t, got.Reasons, 1)
	})

	t.Run("coverage just above 20x income fires the ratio rule", func(t *testing.T) {
		d := healthy()
		d.Insurance.CoverageAmount = decimal.NewFromInt(12_100_000)
		got := engine.Evaluate(d)
		assert.Equal(t, 25, got.RiskScore)
		assert.Len(t, got.Reasons, 1)
	})
}

func TestLoanApprovalEngine_Evaluate(t *testing.T) {
	engine := NewLoanApprovalEngine()

	tests := []struct {
		name        string
		draft       model.Draft
		wantScore   int
		wantGrade   valueobject.RiskBand
		wantReasons int
	}{
		{
			name: "excellent credit low dti experienced hits the cap",
			draft: model.Draft{
				Product: valueobject.ProductLoan,
				Employment: model.EmploymentDetails{
					MonthlyIncome:       decimal.NewFromInt(100_000),
					WorkExperienceYears: 8,
				},
				Loan: model.LoanOptions{
					CreditScore:         780,
					RequestedAmount:     decimal.NewFromInt(500_000),
					ExistingMonthlyDebt: decimal.NewFromInt(10_000),
				},
			},
			// 50 + 30 + 20 + 10 = 110, clamped to 99
			wantScore:   99,
			wantGrade:   valueobject.RiskBandLow,
			wantReasons: 3,
		},
		{
			name: "poor credit with crushing debt clamps at the floor",
			draft: model.Draft{
				Product: valueobject.ProductLoan,
				Employment: model.EmploymentDetails{
					MonthlyIncome: decimal.NewFromInt(20_000),
				},
				Loan: model.LoanOptions{
					CreditScore:         500,
					RequestedAmount:     decimal.NewFromInt(2_000_000),
					ExistingMonthlyDebt: decimal.NewFromInt(15_000),
				},
			},
			// 50 - 20 - 20 = 10, above the floor of 1
			wantScore:   10,
			wantGrade:   valueobject.RiskBandHigh,
			wantReasons: 2,
		},
		{
			name: "missing credit score is penalised conservatively",
			draft: model.Draft{
				Product: valueobject.ProductLoan,
				Loan: model.LoanOptions{
					RequestedAmount: decimal.NewFromInt(100_000),
				},
			},
			wantScore:   30,
			wantGrade:   valueobject.RiskBandHigh,
			wantReasons: 1,
		},
		{
			name: "secured loan with healthy collateral earns the ltv bonus",
			draft: model.Draft{
				Product: valueobject.ProductLoan,
				Employment: model.EmploymentDetails{
					MonthlyIncome: decimal.NewFromInt(80_000),
				},
				Loan: model.LoanOptions{
					CreditScore:     700,
					RequestedAmount: decimal.NewFromInt(700_000),
					Secured:         true,
					CollateralValue: decimal.NewFromInt(1_000_000),
				},
			},
			// 50 + 10 + 20 + 10 = 90
			wantScore:   90,
			wantGrade:   valueobject.RiskBandLow,
			wantReasons: 3,
		},
		{
			name: "overleveraged collateral is penalised",
			draft: model.Draft{
				Product: valueobject.ProductLoan,
				Employment: model.EmploymentDetails{
					MonthlyIncome: decimal.NewFromInt(80_000),
				},
				Loan: model.LoanOptions{
					CreditScore:     700,
					RequestedAmount: decimal.NewFromInt(950_000),
					Secured:         true,
					CollateralValue: decimal.NewFromInt(1_000_000),
				},
			},
			// 50 + 10 + 20 - 10 = 70
			wantScore:   70,
			wantGrade:   valueobject.RiskBandMedium,
			wantReasons: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(tt.draft)
			assert.Equal(t, tt.wantScore, got.ApprovalScore)
			assert.True(t, got.RiskGrade.Equal(tt.wantGrade), "grade %s", got.RiskGrade.String())
			assert.Len(t, got.Reasons, tt.wantReasons)
		})
	}
}

func TestInvestorProfiler_Evaluate(t *testing.T) {
	profiler := NewInvestorProfiler()

	tests := []struct {
		name        string
		options     model.InvestmentOptions
		wantPoints  int
		wantProfile valueobject.InvestorProfile
	}{
		{
			name: "maximum answers classify aggressive",
			options: model.InvestmentOptions{
				TimeHorizon:     model.HorizonLong,
				RiskTolerance:   model.ToleranceHigh,
				ExperienceLevel: model.ExperienceExperienced,
			},
			wantPoints:  6,
			wantProfile: valueobject.InvestorProfileAggressive,
		},
		{
			name: "five points is the aggressive boundary",
			options: model.InvestmentOptions{
				TimeHorizon:     model.HorizonMedium,
				RiskTolerance:   model.ToleranceHigh,
				ExperienceLevel: model.ExperienceExperienced,
			},
			wantPoints:  5,
			wantProfile: valueobject.InvestorProfileAggressive,
		},
		{
			name: "middle answers classify moderate",
			options: model.InvestmentOptions{
				TimeHorizon:     model.HorizonMedium,
				RiskTolerance:   model.ToleranceMedium,
				ExperienceLevel: model.ExperienceNone,
			},
			wantPoints:  2,
			wantProfile: valueobject.InvestorProfileModerate,
		},
		{
			name: "cautious answers classify conservative",
			options: model.InvestmentOptions{
				TimeHorizon:     model.HorizonShort,
				RiskTolerance:   model.ToleranceLow,
				ExperienceLevel: model.ExperienceIntermediate,
			},
			wantPoints:  1,
			wantProfile: valueobject.InvestorProfileConservative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profiler.Evaluate(model.Draft{
				Product:    valueobject.ProductInvestment,
				Investment: tt.options,
			})
			assert.Equal(t, tt.wantPoints, got.Points)
			assert.True(t, got.Profile.Equal(tt.wantProfile), "profile %s", got.Profile.String())
		})
	}
}

func TestEngines_Deterministic(t *testing.T) {
	engine := NewAccountRiskEngine()
	draft := model.Draft{
		Product:    valueobject.ProductBankAccount,
		Employment: model.EmploymentDetails{Type: model.EmploymentSelfEmployed},
		KYC:        model.KYCDetails{PANNumber: "BAD", AadhaarNumber: "BAD"},
		Account:    model.AccountOptions{MonthlyTransactionVolume: decimal.NewFromInt(300_000)},
	}

	first := engine.Evaluate(draft)
	for i := 0; i < 10; i++ {
		got := engine.Evaluate(draft)
		assert.Equal(t, first.RiskScore, got.RiskScore)
		assert.Equal(t, first.Reasons, got.Reasons)
	}
}

func TestAssessor_Assess(t *testing.T) {
	assessor := NewAssessor()

	t.Run("routes by product", func(t *testing.T) {
		account, err := assessor.Assess(model.Draft{
			Product: valueobject.ProductBankAccount,
			KYC:     cleanKYC(),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, account.Score)
		assert.Equal(t, "LOW", account.Category)

		card, err := assessor.Assess(model.Draft{Product: valueobject.ProductCreditCard})
		require.NoError(t, err)
		assert.Equal(t, 50, card.Score)
		assert.Equal(t, "GOOD", card.Category)

		investment, err := assessor.Assess(model.Draft{
			Product: valueobject.ProductInvestment,
			Investment: model.InvestmentOptions{
				TimeHorizon:     model.HorizonLong,
				RiskTolerance:   model.ToleranceHigh,
				ExperienceLevel: model.ExperienceExperienced,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "AGGRESSIVE", investment.Category)
	})

	t.Run("unknown product errors", func(t *testing.T) {
		_, err := assessor.Assess(model.Draft{})
		assert.Error(t, err)
	})
}

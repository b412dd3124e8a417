package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Product
		wantErr bool
	}{
		{name: "bank account", input: "BANK_ACCOUNT", want: ProductBankAccount},
		{name: "credit card", input: "CREDIT_CARD", want: ProductCreditCard},
		{name: "loan", input: "LOAN", want: ProductLoan},
		{name: "insurance", input: "INSURANCE", want: ProductInsurance},
		{name: "investment", input: "INVESTMENT", want: ProductInvestment},
		{name: "unknown", input: "MORTGAGE", wantErr: true},
		{name: "lowercase rejected", input: "loan", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewProduct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestProduct_JSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(ProductCreditCard)
	require.NoError(t, err)
	assert.Equal(t, `"CREDIT_CARD"`, string(raw))

	var p Product
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.True(t, p.Equal(ProductCreditCard))

	assert.Error(t, json.Unmarshal([]byte(`"NOT_A_PRODUCT"`), &p))
}

func TestNewApplicationStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ApplicationStatus
		wantErr bool
	}{
		{name: "pending", input: "PENDING", want: ApplicationStatusPending},
		{name: "approved", input: "APPROVED", want: ApplicationStatusApproved},
		{name: "rejected", input: "REJECTED", want: ApplicationStatusRejected},
		{name: "unknown", input: "WITHDRAWN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewApplicationStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestApplicationStatus_IsTerminal(t *testing.T) {
	assert.False(t, ApplicationStatusPending.IsTerminal())
	assert.True(t, ApplicationStatusApproved.IsTerminal())
	assert.True(t, ApplicationStatusRejected.IsTerminal())
	assert.False(t, ApplicationStatus{}.IsTerminal())
}

func TestBandConstructors(t *testing.T) {
	band, err := NewRiskBand("MEDIUM")
	require.NoError(t, err)
	assert.True(t, band.Equal(RiskBandMedium))
	_, err = NewRiskBand("SEVERE")
	assert.Error(t, err)

	approval, err := NewApprovalBand("EXCELLENT")
	require.NoError(t, err)
	assert.True(t, approval.Equal(ApprovalBandExcellent))
	_, err = NewApprovalBand("POOR")
	assert.Error(t, err)

	profile, err := NewInvestorProfile("AGGRESSIVE")
	require.NoError(t, err)
	assert.True(t, profile.Equal(InvestorProfileAggressive))
	_, err = NewInvestorProfile("RECKLESS")
	assert.Error(t, err)
}

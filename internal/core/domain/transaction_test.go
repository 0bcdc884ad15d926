package domain_test

import (
	"testing"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestKindForAmount(t *testing.T) {
	assert.Equal(t, domain.Credit, domain.KindForAmount(100))
	assert.Equal(t, domain.Debit, domain.KindForAmount(-100))
}

func TestTransaction_Magnitude(t *testing.T) {
	assert.Equal(t, int64(250), domain.Transaction{Amount: 250}.Magnitude())
	assert.Equal(t, int64(250), domain.Transaction{Amount: -250}.Magnitude())
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
	}{
		{
			name: "valid credit",
			tx:   domain.Transaction{AccountID: 1, Amount: 1000, Kind: domain.Credit, Description: "salary"},
		},
		{
			name: "valid debit",
			tx:   domain.Transaction{AccountID: 1, Amount: -500, Kind: domain.Debit, Description: "rent"},
		},
		{
			name:    "zero amount",
			tx:      domain.Transaction{AccountID: 1, Amount: 0, Kind: domain.Credit, Description: "x"},
			wantErr: true,
		},
		{
			name:    "kind contradicts sign",
			tx:      domain.Transaction{AccountID: 1, Amount: -500, Kind: domain.Credit, Description: "rent"},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			tx:      domain.Transaction{AccountID: 1, Amount: 500, Kind: "x", Description: "rent"},
			wantErr: true,
		},
		{
			name:    "empty description",
			tx:      domain.Transaction{AccountID: 1, Amount: 500, Kind: domain.Credit, Description: ""},
			wantErr: true,
		},
		{
			name:    "description too long",
			tx:      domain.Transaction{AccountID: 1, Amount: 500, Kind: domain.Credit, Description: "elevenchars"},
			wantErr: true,
		},
		{
			name: "description length counted in runes",
			tx:   domain.Transaction{AccountID: 1, Amount: 500, Kind: domain.Credit, Description: "caféteria!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_WithinLimit(t *testing.T) {
	acc := domain.Account{AccountID: 1, Balance: -500, Limit: 1000}

	assert.True(t, acc.WithinLimit(-500))  // lands exactly on -limit
	assert.False(t, acc.WithinLimit(-501)) // one past the limit
	assert.True(t, acc.WithinLimit(10000)) // credits are always fine
}

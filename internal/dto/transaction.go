package dto

import "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"

// TransactionRequest is the body of POST /clientes/:id/transacoes. Field
// names follow the challenge wire contract. valor is the magnitude; tipo
// carries the sign ("c" credit, "d" debit).
type TransactionRequest struct {
	Valor     int64  `json:"valor" binding:"required,gt=0"`
	Tipo      string `json:"tipo" binding:"required,oneof=c d"`
	Descricao string `json:"descricao" binding:"required,txdesc"`
}

// SignedAmount converts the magnitude+tipo pair into the signed amount the
// ledger engine works with.
func (r TransactionRequest) SignedAmount() int64 {
	if r.Tipo == string(domain.Debit) {
		return -r.Valor
	}
	return r.Valor
}

// TransactionResponse returns the post-mutation state of the account.
type TransactionResponse struct {
	Limite int64 `json:"limite"`
	Saldo  int64 `json:"saldo"`
}

// ToTransactionResponse converts a domain.Account to TransactionResponse.
func ToTransactionResponse(acc *domain.Account) TransactionResponse {
	return TransactionResponse{
		Limite: acc.Limit,
		Saldo:  acc.Balance,
	}
}

package dto

import (
	"time"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
)

// StatementBalance is the balance block of GET /clientes/:id/extrato.
type StatementBalance struct {
	Total       int64     `json:"total"`
	DataExtrato time.Time `json:"data_extrato"`
	Limite      int64     `json:"limite"`
}

// StatementTransaction is one record in the statement, newest-first. valor is
// the magnitude; tipo carries the sign, as submitted.
type StatementTransaction struct {
	Valor       int64     `json:"valor"`
	Tipo        string    `json:"tipo"`
	Descricao   string    `json:"descricao"`
	RealizadaEm time.Time `json:"realizada_em"`
}

// StatementResponse is the body of GET /clientes/:id/extrato.
type StatementResponse struct {
	Saldo             StatementBalance       `json:"saldo"`
	UltimasTransacoes []StatementTransaction `json:"ultimas_transacoes"`
}

// ToStatementResponse converts a domain.Statement to StatementResponse.
func ToStatementResponse(st *domain.Statement) StatementResponse {
	records := make([]StatementTransaction, len(st.Records))
	for i, txn := range st.Records {
		records[i] = StatementTransaction{
			Valor:       txn.Magnitude(),
			Tipo:        string(txn.Kind),
			Descricao:   txn.Description,
			RealizadaEm: txn.CreatedAt,
		}
	}
	return StatementResponse{
		Saldo: StatementBalance{
			Total:       st.Balance,
			DataExtrato: st.AsOf,
			Limite:      st.Limit,
		},
		UltimasTransacoes: records,
	}
}

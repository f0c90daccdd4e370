package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// IsUniqueViolation informa se o erro veio de um índice único do banco.
// É a barreira atômica contra nomes duplicados quando duas requisições
// passam pela pré-verificação ao mesmo tempo.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}

// IsForeignKeyViolation informa se o erro veio de uma chave estrangeira,
// usado como barreira para vínculos com usuário ou grupo inexistente
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	return false
}

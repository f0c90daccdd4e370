package managing

import (
	"errors"
	"fmt"
)

// Erros de negócio do cadastro de usuários, grupos e vínculos
var (
	ErrDuplicateName            = errors.New("já existe um registro com este nome")
	ErrReferencedEntityNotFound = errors.New("usuário ou grupo referenciado não encontrado")
	ErrMissingRequiredData      = errors.New("dados obrigatórios ausentes")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ManageError é um erro com contexto adicional do cadastro
type ManageError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ManageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ManageError) Unwrap() error {
	return e.Err
}

// NewManageError cria um novo erro de cadastro
func NewManageError(baseErr error, code string, details string) *ManageError {
	return &ManageError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Excluir um usuário ou grupo nunca pode apagar vendas ou vínculos em
// cascata; a integridade referencial continua garantida pelas FKs
func TestSchemaStatements_NoCascadingDeletes(t *testing.T) {
	for _, stmt := range schemaStatements {
		assert.NotContains(t, stmt, "ON DELETE CASCADE", "statement: %s", stmt)
	}
}

func TestSchemaStatements_KeepForeignKeys(t *testing.T) {
	var userGroups, sales string
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS user_groups") {
			userGroups = stmt
		}
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS sales") {
			sales = stmt
		}
	}

	assert.Contains(t, userGroups, "REFERENCES users (id)")
	assert.Contains(t, userGroups, "REFERENCES groups (id)")
	assert.Contains(t, sales, "REFERENCES users (id)")
}

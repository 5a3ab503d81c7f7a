package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// SchemaStatements splits the embedded DDL into individual statements so each
// one can run through the extended protocol.
func SchemaStatements() []string {
	var stmts []string
	for _, part := range strings.Split(schemaSQL, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Migrate applies the jobseekers schema. Every statement is idempotent.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range SchemaStatements() {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("database: migrate: %w", err)
		}
	}
	return nil
}

package output

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/sheet"
)

// DefaultTableName is the SQLite table written when none is given.
const DefaultTableName = "merged"

// WriteSQLite stores a merged table in a SQLite database at path, replacing any
// existing table of the same name. Times are stored as integer milliseconds.
func WriteSQLite(ctx context.Context, path, table string, t *sheet.Table) error {
	if table == "" {
		table = DefaultTableName
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	columns := make([]string, 0, 3+len(t.Fields))
	columns = append(columns,
		quoteIdent(sheet.OrdinalField)+" INTEGER PRIMARY KEY",
		quoteIdent(sheet.OnsetField)+" INTEGER NOT NULL",
		quoteIdent(sheet.OffsetField)+" INTEGER NOT NULL",
	)
	for _, f := range t.Fields {
		columns = append(columns, quoteIdent(f)+" TEXT")
	}

	stmts := []string{
		"DROP TABLE IF EXISTS " + quoteIdent(table),
		"CREATE TABLE " + quoteIdent(table) + " (" + strings.Join(columns, ", ") + ")",
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply %q: %w", stmt, err)
		}
	}

	names := make([]string, 0, 3+len(t.Fields))
	for _, h := range t.Header() {
		names = append(names, quoteIdent(h))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	insert, err := tx.PrepareContext(ctx,
		"INSERT INTO "+quoteIdent(table)+" ("+strings.Join(names, ", ")+") VALUES ("+placeholders+")")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, r := range t.Rows {
		args := make([]interface{}, 0, len(names))
		args = append(args, r.Ordinal, r.Onset, r.Offset)
		for _, v := range r.Values {
			args = append(args, v)
		}
		if _, err := insert.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", r.Ordinal, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

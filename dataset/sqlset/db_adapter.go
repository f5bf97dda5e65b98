package sqlset

import (
	"context"
	"database/sql"
	"fmt"
)

/*
DBAdapter is an Adapter over a database/sql database. The dialect specifics
are given by its fields.
*/
type DBAdapter struct {
	DB *sql.DB
	// IDColumnDefinition is the DDL for an autoincremented primary key.
	IDColumnDefinition string
	// Placeholder returns the placeholder for the i-th (from 1) value of
	// a statement.
	Placeholder func(int) string
	// MaxInsertionsPerStatement is the maximum number of examples added
	// with a single insert statement. Adding more results in more
	// statements.
	MaxInsertionsPerStatement int
}

// ColumnName returns the attribute name as column name if it is valid.
func (a *DBAdapter) ColumnName(attribute string) (string, error) {
	return ValidColumnName(attribute)
}

// CreateExampleTable creates the examples table if it does not exist.
func (a *DBAdapter) CreateExampleTable(ctx context.Context, columns []string) error {
	createStmt, err := a.DB.PrepareContext(ctx, CreateTableStatement(a.IDColumnDefinition, columns))
	if err != nil {
		return fmt.Errorf("preparing examples creation statement: %v", err)
	}
	defer createStmt.Close()
	_, err = createStmt.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("ensuring examples table exists: %v", err)
	}
	return nil
}

/*
AddExamples inserts the rows in chunks of at most MaxInsertionsPerStatement
within a transaction and returns the number of rows inserted.
*/
func (a *DBAdapter) AddExamples(ctx context.Context, columns []string, rows [][]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	size := a.MaxInsertionsPerStatement
	if size < 1 {
		size = 1
	}
	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction to insert examples: %v", err)
	}
	for i, chunk := range Chunks(len(rows), size) {
		stmt := InsertStatement(columns, chunk[1]-chunk[0], a.Placeholder)
		values := make([]interface{}, 0, (chunk[1]-chunk[0])*len(columns))
		for _, row := range rows[chunk[0]:chunk[1]] {
			if len(row) != len(columns) {
				tx.Rollback()
				return 0, fmt.Errorf("inserting examples: expected %d values per row, got %d", len(columns), len(row))
			}
			for _, v := range row {
				values = append(values, v)
			}
		}
		_, err = tx.ExecContext(ctx, stmt, values...)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting the %dth chunk of %d examples: %v", i+1, chunk[1]-chunk[0], err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("committing inserted examples: %v", err)
	}
	return len(rows), nil
}

// IterateOnExamples calls the lambda with each row of the examples table
// in id order until it returns false or an error.
func (a *DBAdapter) IterateOnExamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error {
	rows, err := a.DB.QueryContext(ctx, SelectStatement(columns))
	if err != nil {
		return err
	}
	defer rows.Close()
	for j := 0; rows.Next(); j++ {
		row := make([]string, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range row {
			dest[i] = &row[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return err
		}
		ok, err := lambda(j, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	err = rows.Err()
	if err != nil {
		return err
	}
	return rows.Close()
}

// CountExamples returns the number of rows on the examples table.
func (a *DBAdapter) CountExamples(ctx context.Context) (int, error) {
	var count int
	err := a.DB.QueryRowContext(ctx, CountStatement()).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close closes the database.
func (a *DBAdapter) Close() error {
	return a.DB.Close()
}

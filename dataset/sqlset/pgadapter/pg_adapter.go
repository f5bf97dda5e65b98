/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/id3/dataset/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

// MaxExampleInsertionsPerStatement is the maximum number
// of examples that are allowed to be added with a single
// insert command with the AddExamples method of the adapter.
// Trying to add more will result in making more insertion commands
const MaxExampleInsertionsPerStatement = 10

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres: %v", err)
	}
	return &sqlset.DBAdapter{
		DB:                        db,
		IDColumnDefinition:        "SERIAL PRIMARY KEY",
		Placeholder:               Placeholder,
		MaxInsertionsPerStatement: MaxExampleInsertionsPerStatement,
	}, nil
}

// Placeholder returns the PostgreSQL placeholder for the i-th value.
func Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

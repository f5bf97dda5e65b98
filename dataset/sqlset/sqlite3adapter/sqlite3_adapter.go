/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/id3/dataset/sqlset"
)

/*
MaxExampleInsertionsPerStatement is the maximum number
of examples that are allowed to be added with a single
insert command with the AddExamples method of the adapter.
Trying to add more will result in making more insertion commands
*/
const MaxExampleInsertionsPerStatement = 10

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &sqlset.DBAdapter{
		DB:                        db,
		IDColumnDefinition:        "INTEGER PRIMARY KEY AUTOINCREMENT",
		Placeholder:               func(int) string { return "?" },
		MaxInsertionsPerStatement: MaxExampleInsertionsPerStatement,
	}, nil
}

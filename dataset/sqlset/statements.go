package sqlset

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	// ExampleTable is the name of the table examples are kept on.
	ExampleTable = "examples"
	// IDColumn is the name of the column ordering the examples.
	IDColumn = "id"
	// NameColumn is the name of the column for the example names.
	NameColumn = "name"
	// LabelColumn is the name of the column for the example labels.
	LabelColumn = "label"
)

/*
ValidColumnName takes an attribute name and returns it as column name or an
error if it is one of the reserved column names or contains a double quote.
*/
func ValidColumnName(attribute string) (string, error) {
	switch attribute {
	case IDColumn, NameColumn, LabelColumn:
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as attribute name`, attribute)
	}
	if attribute == "" {
		return "", fmt.Errorf("empty attribute name cannot be used as column")
	}
	if strings.ContainsAny(attribute, `"`) {
		return "", fmt.Errorf(`attribute name '%s' contains invalid character '"'`, attribute)
	}
	return attribute, nil
}

/*
CreateTableStatement takes the DDL for the id column and the attribute
columns and returns the statement creating the examples table if it does
not exist.
*/
func CreateTableStatement(idColumnDefinition string, attributeColumns []string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s("%s" %s, "%s" TEXT NOT NULL, "%s" TEXT NOT NULL`, ExampleTable, IDColumn, idColumnDefinition, NameColumn, LabelColumn))
	for _, c := range attributeColumns {
		buf.WriteString(fmt.Sprintf(`, "%s" TEXT NOT NULL`, c))
	}
	buf.WriteString(")")
	return buf.String()
}

/*
InsertStatement takes the columns to fill, the number of rows to insert and
a function returning the placeholder for the i-th (starting on 1) value of
the statement and returns an insert statement for that number of rows.
*/
func InsertStatement(columns []string, rows int, placeholder func(int) string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`INSERT INTO %s ("%s") VALUES `, ExampleTable, strings.Join(columns, `", "`)))
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for c := range columns {
			if c > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(placeholder(n))
			n++
		}
		buf.WriteString(")")
	}
	return buf.String()
}

// SelectStatement returns the query reading the given columns in id order.
func SelectStatement(columns []string) string {
	return fmt.Sprintf(`SELECT "%s" FROM %s ORDER BY "%s"`, strings.Join(columns, `", "`), ExampleTable, IDColumn)
}

// CountStatement returns the query counting the examples.
func CountStatement() string {
	return fmt.Sprintf(`SELECT COUNT(*) FROM %s`, ExampleTable)
}

/*
Chunks takes a number of rows and a maximum chunk size and returns the
boundaries of consecutive chunks covering all rows.
*/
func Chunks(rows, size int) [][2]int {
	var result [][2]int
	for start := 0; start < rows; start += size {
		end := start + size
		if end > rows {
			end = rows
		}
		result = append(result, [2]int{start, end})
	}
	return result
}

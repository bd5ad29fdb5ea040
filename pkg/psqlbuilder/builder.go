// Package psqlbuilder pins squirrel statement builders to PostgreSQL
// dollar placeholders so repositories never have to repeat it.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT builder with $N placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT builder with $N placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE builder with $N placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE builder with $N placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}

// Package assets ships the default word lists and SQL migrations inside the binary.
package assets

import "embed"

// Embedded file names.
const (
	AnswersFile   = "answers.txt"
	AllowedFile   = "allowed.txt"
	MigrationsDir = "sql"
)

//go:embed answers.txt allowed.txt sql/*.sql
var FS embed.FS

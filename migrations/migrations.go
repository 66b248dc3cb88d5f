package migrations

import "embed"

// Dir is the directory inside FS that holds the goose migrations.
const Dir = "sql"

//go:embed sql/*.sql
var FS embed.FS

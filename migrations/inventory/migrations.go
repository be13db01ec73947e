// Package inventory embeds the goose migrations of the inventory schema.
package inventory

import "embed"

//go:embed *.sql
var FS embed.FS

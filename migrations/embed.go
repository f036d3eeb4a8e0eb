// Package migrations embeds the goose SQL migrations so that the server,
// the operator CLI and the test helpers apply the same schema.
package migrations

import "embed"

// FS holds every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS

// migrations содержит SQL-схему сервиса в формате golang-migrate:
// N_title.up.sql / N_title.down.sql (см. postgres.Migrate и postgres.Rollback).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

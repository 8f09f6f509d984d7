// Package shortener holds assets shared by the binaries of the project.
package shortener

import "embed"

// Migrations contains the goose SQL migrations of the relational store.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Package domain contains the core entities of the link shortener: links,
// custom domains, host mappings, users and per-link statistics. These types
// are shared by the storage, cache and API layers and carry no
// infrastructure concerns.
package domain

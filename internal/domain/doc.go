// Package domain contains shared domain types used across the retro board
// sub-packages. Entity and view-model types live in sub-packages
// (domain/retro, domain/step, domain/query). This root package holds the
// sentinel errors and the validation error type shared by all of them.
package domain

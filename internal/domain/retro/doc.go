// Package retro holds the board model (cards, columns, users) and the pure
// projections the view is built from: per-column filtering and vote
// sorting, card joins, avatar initials and action-point export rows.
package retro

// Package feedback persists user reactions to suggested corrections and
// turns accepted suggestions into small ranking boosts.
//
// The store is an append-only TSV log plus an in-memory count of accepted
// (user, suggestion) pairs. The log is the source of truth: counts are
// rebuilt from it on open, and a record only counts once its line has been
// durably appended. Rejections are logged too, for audit, but never boost.
package feedback

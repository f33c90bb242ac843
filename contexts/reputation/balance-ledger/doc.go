// Package balanceledger implements issuer-scoped reputation balances inside
// ChainReputation.
//
// Balances are keyed (account, issuer, token). The true balance of an account
// for a token is the sum over every issuer that ever issued to it, so the
// per-issuer rows are the source of truth and the aggregate is derived.
//
// Authorization is injected: the ledger asks a TokenAccess port whether the
// calling issuer is the token owner or one of its oracles. The token registry
// answers that question at the composition root; this module never imports it.
package balanceledger

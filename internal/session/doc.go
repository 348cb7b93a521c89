// Package session runs the outer drill loop: one challenge per round,
// a blank line between rounds, until a round limit is reached or the
// interaction boundary fails.
//
// With a single kind configured every round uses it; with several, each
// round draws one uniformly. Every session gets a UUIDv7 token that tags
// its log lines.
package session

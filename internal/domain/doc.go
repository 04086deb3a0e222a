// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/option, domain/override).
// This root package holds sentinel errors, validation types, and the
// domain-level Action interface used for staged configuration changes.
package domain

// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/conversation,
// domain/trace). This root package holds sentinel errors, the error
// classification helper, and the field-level validation error type shared
// across all entities.
package domain

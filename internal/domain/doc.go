// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/department, domain/employee).
// This root package holds sentinel errors, the field-level ValidationError and
// the domain-level Action interface used for staged writes.
package domain

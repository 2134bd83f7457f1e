// Package domain defines the credential model, the storage contract and the
// error taxonomy shared across passkeep.
// It contains plain types and contracts (interfaces) only.
package domain

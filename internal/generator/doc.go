// Package generator builds random passwords from a composed alphabet.
//
// The alphabet always contains lowercase ASCII letters and optionally appends
// uppercase letters, digits and ASCII punctuation, in that order. Every
// character is drawn independently and uniformly from crypto/rand using
// rejection sampling, so an enabled class may occasionally be absent from a
// short password.
package generator

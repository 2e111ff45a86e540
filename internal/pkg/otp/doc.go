// Package otp provides helpers for generating one-time passwords (OTP)
// delivered out-of-band, typically by email.
//
// Codes are short-lived numeric secrets; persistence, expiry, and single-use
// semantics are the caller's responsibility.
package otp

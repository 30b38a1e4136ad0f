// Package diagnostic collects structured errors, warnings and notes found
// while validating fill profiles.
//
// Key capabilities:
//   - Per-profile, per-key findings with stable codes
//   - Severity split (error, warning, info)
//   - A combined error for callers that only need pass/fail
package diagnostic

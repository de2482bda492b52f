// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError records which operation failed, on what resource, and how the
// user can fix it. The issue catalog holds longer Markdown help for the failures
// letterpress users actually hit (missing word list, missing board letters,
// broken config file) and renders it for the terminal with glamour.
package issue

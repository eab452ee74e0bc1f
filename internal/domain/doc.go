// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (display/state) and contracts (interfaces) only.
package domain

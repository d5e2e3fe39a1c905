// Package errors provides classified error primitives used across manualgen.
//
// Every failure that can stop a run is a ClassifiedError carrying a category,
// a severity and structured context. The CLI boundary turns the category into
// a process exit code through CLIErrorAdapter; nothing below main exits.
//
// Example usage:
//
//	err := errors.NotFoundError("template file not found").
//		WithContext("path", templatePath).
//		WithCause(statErr).
//		Build()
package errors

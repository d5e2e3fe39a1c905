// Package manual validates user manual templates and generates manuals from them.
//
// A run reads one Template, validates it into a ValidationResult (required
// section presence plus format warnings), substitutes {{placeholder}} tokens
// from a Variables map and writes the generated manual. A Report summarizing
// the validation and basic template statistics can be written alongside.
//
// Missing required sections abort generation; format issues never do.
package manual

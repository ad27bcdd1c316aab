// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagDryRun  = "dry-run" // Preview without making changes
	FlagFailed  = "failed"  // Only failed checks
	FlagForce   = "force"   // Skip confirmation prompt
	FlagList    = "list"    // List mode
	FlagLocal   = "local"   // Use local scope
	FlagProject = "project" // Restrict to the current project
	FlagRaw     = "raw"     // Raw output without formatting
	FlagSuggest = "suggest" // Suggest a correction
	FlagSummary = "summary" // Aggregate counts instead of entries

	// String flags

	FlagOlderThan = "older-than" // Duration threshold
	FlagSince     = "since"      // Duration look-back window
	FlagSource    = "source"     // Source prefix filter

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)

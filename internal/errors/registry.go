package errors

import "sort"

// Template defines a registered error.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Error codes.
const (
	CodeConfigParse   = "E120"
	CodeConfigRead    = "E121"
	CodeConfigInvalid = "E122"
	CodeUnknownTheme  = "E123"
	CodeConfigWrite   = "E124"
	CodeConfigMissing = "E141"
	CodeConfigExists  = "E142"
	CodeUnknownKind   = "E200"
	CodeBadAttribute  = "E201"
	CodeListenFailed  = "E300"
	CodeWatcherFailed = "E301"
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Config errors (E120-E139)

	CodeConfigParse: {
		Category:   CategoryConfig,
		Message:    "Invalid inputkit.yaml",
		Detail:     "The configuration file could not be parsed as YAML or JSON.",
		Suggestion: "Check indentation and quoting near the reported line.",
	},
	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Cannot read configuration",
		Detail:   "The configuration file exists but could not be read.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration parsed but failed validation.",
	},
	CodeUnknownTheme: {
		Category:   CategoryConfig,
		Message:    "Unknown theme",
		Detail:     "The selected theme is not defined under themes.",
		Suggestion: "Define the theme in inputkit.yaml or pick one of the listed themes.",
	},
	CodeConfigWrite: {
		Category: CategoryConfig,
		Message:  "Cannot write configuration",
	},

	// CLI errors (E140-E159)

	CodeConfigMissing: {
		Category:   CategoryCLI,
		Message:    "Not an inputkit project",
		Detail:     "No inputkit.yaml was found in this directory or any parent.",
		Suggestion: "Run 'inputkit init' to create one.",
	},
	CodeConfigExists: {
		Category:   CategoryCLI,
		Message:    "Configuration already exists",
		Suggestion: "Use --force to overwrite it.",
	},

	// Render errors (E200-E299)

	CodeUnknownKind: {
		Category:   CategoryRender,
		Message:    "Unknown input kind",
		Suggestion: "Run 'inputkit kinds' to list supported kinds.",
	},
	CodeBadAttribute: {
		Category:   CategoryRender,
		Message:    "Invalid attribute flag",
		Detail:     "Attributes are given as name=value. A bare name sets a boolean attribute.",
		Suggestion: "Example: --attr name=email --attr required",
	},

	// Preview errors (E300-E319)

	CodeListenFailed: {
		Category:   CategoryPreview,
		Message:    "Preview server failed to start",
		Suggestion: "Is another process using the port? Try --port.",
	},
	CodeWatcherFailed: {
		Category: CategoryPreview,
		Message:  "Config watcher failed",
	},
}

// AllCodes returns all registered error codes, sorted.
func AllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

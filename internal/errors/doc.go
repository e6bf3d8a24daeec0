// Package errors provides coded, actionable errors for the inputkit CLI and
// preview server.
//
// Each code (e.g. "E120") maps to a category, a short message, an optional
// explanation and a hint:
//
//	err := errors.New(errors.CodeConfigParse).
//	    WithLocationFromYAML("inputkit.yaml", yamlErr).
//	    Wrap(yamlErr)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR E120: Invalid inputkit.yaml
//	//
//	//   inputkit.yaml:3
//	//
//	//        2 │ defaults:
//	//   →    3 │   text: [
//	//        4 │ themes:
//	//
//	//   Hint: Check indentation and quoting near the reported line.
//
// Codes are grouped by range: E120-E139 config, E140-E159 cli,
// E200-E299 render and E300-E319 preview.
package errors

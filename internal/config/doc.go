// Package config loads inputkit.yaml, the project configuration read by the
// CLI and the preview server.
//
// # Configuration File Structure
//
//	defaults:
//	  "*":
//	    autocomplete: "off"
//	  range:
//	    min: 0
//	    max: 100
//	themes:
//	  bootstrap:
//	    "*":
//	      class: form-control
//	    checkbox:
//	      class: [form-check-input]
//	theme: bootstrap
//	preview:
//	  host: localhost
//	  port: 4100
//	  watch: true
//	  samples:
//	    - kind: range
//	      label: Volume
//	      output: true
//	      attrs: {name: volume, value: 40}
//	log:
//	  level: info
//	  pretty: true
//
// The same document may be written as JSON in inputkit.json.
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    return err
//	}
//	theme := cfg.Apply(defaults.Global())
package config

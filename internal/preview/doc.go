// Package preview implements "inputkit preview", a local HTTP server that
// renders the samples configured in inputkit.yaml.
//
// Routes:
//
//	GET /                   page with every sample, its label and its markup
//	GET /render?kind=range  a single element; a.<name>=<value> sets attributes,
//	                        theme= overrides the configured theme, output=1
//	                        adds the range <output>
//	GET /kinds              supported kinds and configured themes as JSON
//	GET /metrics            Prometheus metrics
//	GET /_inputkit/reload   websocket telling open pages to reload
//
// When preview.watch is set the config file is polled; a valid change swaps
// the served configuration and reloads open pages, an invalid one leaves the
// previous configuration active and shows the error on the page.
package preview

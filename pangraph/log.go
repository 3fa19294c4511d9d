package pangraph

import "github.com/grailbio/base/log"

// graphLogger is the narrow logging surface a Graph depends on, so tests
// can substitute a recording double via WithLogger instead of asserting on
// grailbio/base/log's global output.
type graphLogger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// defaultGraphLogger forwards to github.com/grailbio/base/log, the same
// package grailbio-bio's markduplicates/pileup pipelines use for
// unattended, structured diagnostics.
type defaultGraphLogger struct{}

func (defaultGraphLogger) Infof(format string, args ...interface{})  { log.Info.Printf(format, args...) }
func (defaultGraphLogger) Errorf(format string, args ...interface{}) { log.Error.Printf(format, args...) }
func (defaultGraphLogger) Fatalf(format string, args ...interface{}) { log.Fatalf(format, args...) }

// fatalf reports a programmer-contract violation via the graph's logger
// and terminates the process, per the specification's error handling
// design (invariant breaches are fatal, not recoverable errors).
func (g *Graph) fatalf(format string, args ...interface{}) {
	g.logger.Fatalf("pangraph: contract violation: "+format, args...)
}

// infof reports cleaning-pipeline progress, mirroring the original's
// `cout << now() << ...` progress lines with structured logging instead.
func (g *Graph) infof(format string, args ...interface{}) {
	g.logger.Infof(format, args...)
}

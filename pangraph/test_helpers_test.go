package pangraph_test

import "fmt"

// fatalPanicLogger satisfies pangraph's graphLogger interface structurally
// (Infof/Errorf/Fatalf), turning a contract-violation Fatalf into a Go
// panic so tests can assert on it with require.Panics instead of forking a
// subprocess to observe an os.Exit.
type fatalPanicLogger struct{}

func (fatalPanicLogger) Infof(format string, args ...interface{})  {}
func (fatalPanicLogger) Errorf(format string, args ...interface{}) {}
func (fatalPanicLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

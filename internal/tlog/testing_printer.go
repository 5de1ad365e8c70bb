package tlog

// TestingPrinter the part of *testing.T used to report errors.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

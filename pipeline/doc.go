// Package pipeline runs one recording end to end:
//
//	signal.Table → correlation → distance → complete graph → MST → centrality
//
// and fans a batch of recordings out over a bounded worker pool.
//
// Every stage is a pure function of its input and a Pipeline carries only
// configuration, so one Pipeline may serve many goroutines. RunBatch isolates
// failures: a recording that is structurally invalid or degenerate records its
// error in its own Outcome and never cancels the others.
package pipeline

// Package audit implements the append-only audit trail the reception desk
// writes booking attempts to.
//
// The Sink interface is write-only: the desk never reads the trail back. The
// FileSink stores one timestamped text line per record; the MemorySink backs
// tests and dry runs.
package audit

// Package logger is the central log for the application. Log entries are
// kept in memory, in a bounded ring, and can optionally be echoed to an
// io.Writer as they arrive.
//
// Every entry is made up of a tag and a detail. The tag names the part of
// the program that made the entry, the detail is the message itself.
//
// Entries are only accepted if the Permission argument allows it. Most
// callers will use the Allow value. Callers that want to make logging
// conditional can implement the Permission interface.
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry with a repeat count.
package logger

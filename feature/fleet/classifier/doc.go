// Package classifier attributes picture-book pages to the event that produced them.
//
// Page 0 of every entry is Normal. Later pages are looked up in a
// hand-maintained Table keyed by picture-book number; numbers without an
// entry, and entries whose page count no longer matches the table, classify
// as Unknown. Unknown is an expected result meaning "needs manual review".
//
// A Classifier is built once (New, Default or FromConfig) and passed to its
// users. It never changes after construction and may be shared between
// goroutines. The built-in table can be extended with a YAML file:
//
//	185:
//	  - swimsuit
//	  - original1(true)
package classifier

// Package syncer implements the feed-to-file synchronization procedure: it
// walks a source's feed entries, derives local filenames from titles and
// publish dates, downloads missing enclosures, and tags the results.
package syncer

// Package feed retrieves and parses RSS/Atom feeds into the minimal entry
// shape the syncer consumes: title, published date, enclosure links.
package feed

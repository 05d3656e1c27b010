// Package tags writes descriptive ID3 metadata into downloaded media files.
package tags

package scalpel

import "github.com/cespare/xxhash/v2"

// Checksum fingerprints html for cheap change detection, so a caller
// comparing repeated HTML/HTMLs extractions doesn't need to diff whole
// strings.
func Checksum(html string) uint64 {
	return xxhash.Sum64String(html)
}

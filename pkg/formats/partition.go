package formats

import "strings"

// pvrtc2Prefix marks the one compressed family the compressed target
// enumeration has no members for; those records are dropped entirely.
const pvrtc2Prefix = "Pvrtc2"

// Partition splits records into the plain and compressed groups,
// preserving relative order within each. Compressed Pvrtc2 records are
// filtered out. No record ever lands in both groups.
func Partition(records []Record) (plain, compressed []Record) {
	for _, rec := range records {
		if !rec.Compressed {
			plain = append(plain, rec)
			continue
		}
		if strings.HasPrefix(rec.Name, pvrtc2Prefix) {
			continue
		}
		compressed = append(compressed, rec)
	}
	return plain, compressed
}

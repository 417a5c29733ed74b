package format

import "fmt"

// sizeUnits are the named scales. Anything still ≥ 1024 after the last one is
// reported in PB without further division.
//
//nolint:gochecknoglobals // Lookup table
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Size renders bytes with two decimals in the largest unit below 1024.
func Size(bytes int64) string {
	size := float64(bytes)

	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}

		size /= 1024
	}

	return fmt.Sprintf("%.2f PB", size)
}

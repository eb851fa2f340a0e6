package lua

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// tableDigest returns an md5 checksum over all rows that does not depend on
// row order: each record is digested on its own and the sorted digests are
// hashed together.
func tableDigest(rows [][]string) string {
	digests := make([]string, len(rows))
	for i, row := range rows {
		digests[i] = recordDigest(row)
	}
	sort.Strings(digests)
	return hexDigest(strings.Join(digests, ""))
}

// recordDigest hashes one row with its cells sorted, so the digest does not
// depend on column order either. Decimal cells are shortened the same way
// the rendered values are, keeping "2.50" and "2.5" on the same digest.
func recordDigest(row []string) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		if m := decimalPattern.FindStringSubmatch(cell); m != nil {
			cells[i] = shortestDecimal(m[1], m[2])
		} else {
			cells[i] = cell
		}
	}
	sort.Strings(cells)
	return hexDigest(strings.Join(cells, ""))
}

func hexDigest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

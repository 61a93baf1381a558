package decode

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Name normalizes a display name: surrounding space trimmed, NFKC applied and
// full-width ASCII folded to its narrow form ("Ｕ－５１１" becomes "U-511").
func Name(s string) string {
	return width.Fold.String(norm.NFKC.String(strings.TrimSpace(s)))
}

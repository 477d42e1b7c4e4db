package text

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line-oriented diff between original and modified, with
// removed lines prefixed by "-" and added lines by "+". Unchanged lines are
// omitted so a preview only shows what serialization touched.
func Diff(original, modified string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []byte
	for _, d := range diffs {
		var prefix byte
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = '-'
		case diffmatchpatch.DiffInsert:
			prefix = '+'
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, prefix)
			out = append(out, line...)
			out = append(out, '\n')
		}
	}
	return string(out)
}

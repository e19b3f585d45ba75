package git

import "strings"

// isEmptyHistory reports whether git failed because HEAD has no commit yet.
func isEmptyHistory(stderr string) bool {
	return strings.Contains(stderr, "does not have any commits yet") ||
		strings.Contains(stderr, "bad default revision 'HEAD'") ||
		strings.Contains(stderr, "unknown revision or path not in the working tree")
}

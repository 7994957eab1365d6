package cli

import (
	"fmt"
	"strconv"
	"strings"
)

const minIDPrefix = 4

// resolveEntryID maps user input to an entry ID from ids (listed in display
// order). The input can be:
//   - a full ID
//   - "#3", the row number as shown by "list"
//   - a bare row number, when it is within the list
//   - a unique ID prefix of at least four characters
//
// A bare number outside the list is tried as an ID prefix before it is
// reported as a missing row, so digit-only prefixes still resolve. Input
// that matches nothing else is returned unchanged and the removal becomes a
// no-op.
func resolveEntryID(input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	if rest, ok := strings.CutPrefix(input, "#"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return "", fmt.Errorf("invalid row %q", input)
		}
		return rowID(n, ids)
	}

	n, numErr := strconv.Atoi(input)
	if numErr == nil && n >= 1 && n <= len(ids) {
		return ids[n-1], nil
	}

	if id, found, err := matchPrefix(input, ids); found || err != nil {
		return id, err
	}
	if numErr == nil {
		return rowID(n, ids)
	}
	return input, nil
}

func rowID(n int, ids []string) (string, error) {
	if n < 1 || n > len(ids) {
		return "", fmt.Errorf("row #%d does not exist (%d entries)", n, len(ids))
	}
	return ids[n-1], nil
}

// matchPrefix reports the single ID starting with prefix. Prefixes shorter
// than minIDPrefix never match.
func matchPrefix(prefix string, ids []string) (string, bool, error) {
	if len(prefix) < minIDPrefix {
		return "", false, nil
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", false, nil
	case 1:
		return matches[0], true, nil
	default:
		return "", false, fmt.Errorf("ID prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

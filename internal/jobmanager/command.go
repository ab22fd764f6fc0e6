package jobmanager

import (
	"fmt"
	"path/filepath"
	"strings"
)

// parseCommandLine splits commandLine on whitespace into a program and its
// args. Quoting and escaping are not interpreted, so `echo "a b"` yields the
// args `"a` and `b"`.
func parseCommandLine(commandLine string) (string, []string, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidCommand, commandLine)
	}

	return fields[0], fields[1:], nil
}

// OutputFileName returns the name of the file that holds the combined output
// of the Job with the given id. Anything serving Job output must locate the
// file using this name.
func OutputFileName(id string) string {
	return id + ".txt"
}

// validateID rejects ids that can't safely be used as an output file name.
func validateID(id string) error {
	if id == "" || id == "." || id == ".." ||
		strings.ContainsRune(id, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return nil
}

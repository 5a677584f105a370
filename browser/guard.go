package browser

import (
	"errors"
	"strconv"
	"strings"
)

var errConcurrency = errors.New(
	"geckodriver requires --concurrency or -c to be set to 1 because it does not allow " +
		"multiple sessions in parallel: pass --concurrency=1 or -c 1 to the test command")

// CheckFirefoxConcurrency scans a command line for a concurrency flag and
// enforces the geckodriver single-session limit. Accepted forms are
// `--concurrency <n>`, `-c <n>`, `--concurrency=<n>` and `-c=<n>`; the scan
// stops at the first one found. A flag with a numeric value other than 1 is
// an error, as is a missing flag. A non-numeric value is tolerated.
func CheckFirefoxConcurrency(args []string) error {
	readingValue := false
	found := false

	for _, arg := range args {
		switch {
		case arg == "--concurrency" || arg == "-c":
			readingValue = true
		case strings.HasPrefix(arg, "--concurrency=") || strings.HasPrefix(arg, "-c="):
			_, value, _ := strings.Cut(arg, "=")
			if n, err := strconv.ParseUint(value, 10, 32); err == nil && n != 1 {
				return errConcurrency
			}
			found = true
		case readingValue:
			if n, err := strconv.ParseUint(arg, 10, 32); err == nil && n != 1 {
				return errConcurrency
			}
			found = true
		}
		if found {
			break
		}
	}

	if !found {
		return errConcurrency
	}
	return nil
}

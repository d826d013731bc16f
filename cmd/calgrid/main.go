package main

import (
	"os"
	"strings"

	"calgrid/internal/calendar"
	"calgrid/internal/cli"
	"calgrid/internal/locale"
)

func isDate(s string) bool {
	_, err := calendar.ParseDate(locale.NormalizeDigits(strings.TrimSpace(s)))
	return err == nil
}

func rewriteDirectDateArgs(argv []string) []string {
	// Convenience: `calgrid 2024-03-01` works like `calgrid --date 2024-03-01`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is
	// rewritten before parsing. Persistent flags may come first, so look for
	// the first positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Flags we don't recognize are skipped without their value so the date
	// is never consumed by accident.
	valueFlags := map[string]bool{
		"--config":      true,
		"--date":        true,
		"--active-date": true,
		"--min-date":    true,
		"--max-date":    true,
		"--locale":      true,
		"--format":      true,
		"--log-level":   true,
		"--log-file":    true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if isDate(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "--date")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectDateArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

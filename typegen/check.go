package typegen

import (
	"os"
	"strings"

	"github.com/teranos/papyrus-typegen/errors"
)

// CheckResult holds the result of comparing a fresh document with the one on disk.
type CheckResult struct {
	UpToDate bool
	// Missing is true when the existing file does not exist
	Missing bool
	// Line is the 1-based line (metadata lines excluded) of the first difference
	Line int
	// Want is the freshly generated line, Got the line on disk
	Want string
	Got  string
}

// CompareFile compares generated output with the declaration file at path.
func CompareFile(generated, path string) (*CheckResult, error) {
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &CheckResult{Missing: true}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return CompareContent(generated, string(existing)), nil
}

// CompareContent compares two documents line by line, ignoring "// Source:"
// metadata lines and trailing carriage returns.
func CompareContent(generated, existing string) *CheckResult {
	want := filterMetadataLines(generated)
	got := filterMetadataLines(existing)

	for i := 0; i < len(want) || i < len(got); i++ {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g || i >= len(want) || i >= len(got) {
			return &CheckResult{Line: i + 1, Want: w, Got: g}
		}
	}
	return &CheckResult{UpToDate: true}
}

func filterMetadataLines(content string) []string {
	lines := strings.Split(content, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), SourceLinePrefix) {
			continue
		}
		out = append(out, line)
	}
	return out
}

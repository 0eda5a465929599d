package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/auditdb/stackgen/internal/filesystems"
	"github.com/auditdb/stackgen/internal/render"
	"github.com/pmezard/go-difflib/difflib"
)

// Drift compares one rendered file with its copy on disk.
type Drift struct {
	File    string
	Missing bool   // no file on disk
	Diff    string // unified diff from disk to rendered, empty when equal
}

// Changed reports whether the file on disk differs from the rendered one.
func (d Drift) Changed() bool {
	return d.Missing || d.Diff != ""
}

// Check diffs every file of manifest against filesystem.
func Check(filesystem filesystems.FileSystem, manifest render.Manifest) ([]Drift, error) {
	var drifts []Drift
	for _, file := range manifest.Files() {
		current, err := filesystem.ReadFile(file.Name)
		if errors.Is(err, fs.ErrNotExist) {
			drifts = append(drifts, Drift{File: file.Name, Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
		}

		drift := Drift{File: file.Name}
		if !bytes.Equal(current, file.Content) {
			drift.Diff = unifiedDiff(file.Name, string(current), string(file.Content))
			if drift.Diff == "" {
				// SplitLines hides a missing final newline
				drift.Diff = fmt.Sprintf("%s differs only in its trailing newline\n", file.Name)
			}
		}
		drifts = append(drifts, drift)
	}
	return drifts, nil
}

func unifiedDiff(name, a, b string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: fmt.Sprintf("current/%s", name),
		ToFile:   fmt.Sprintf("rendered/%s", name),
		Context:  3,
	}
	out, _ := difflib.GetUnifiedDiffString(diff)
	return out
}

package core

import (
	"errors"
	"testing"
)

func TestIDFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{
			name: "same path produces same ID",
			path: "docs/report.txt",
		},
		{
			name: "empty string",
			path: "",
		},
		{
			name: "long path",
			path: "/var/lib/extracted/2025/08/quarterly-report-final-v3.pdf.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromPath(tt.path)
			id2 := IDFromPath(tt.path)

			if id1 != id2 {
				t.Errorf("IDFromPath() produced different IDs for same path: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromPath_Different(t *testing.T) {
	id1 := IDFromPath("a.txt")
	id2 := IDFromPath("b.txt")

	if id1 == id2 {
		t.Errorf("IDFromPath() produced same ID for different paths")
	}
}

func TestFileTarget_ID(t *testing.T) {
	target := FileTarget("docs/report.txt")
	if target.ID() != IDFromPath("docs/report.txt") {
		t.Errorf("FileTarget.ID() does not agree with IDFromPath()")
	}
}

func TestSearchResult_MatchedPaths(t *testing.T) {
	result := &SearchResult{
		Matched: []FileMatch{
			{Target: "c.txt"},
			{Target: "a.txt"},
			{Target: "b.txt"},
		},
	}

	paths := result.MatchedPaths()
	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(paths) != len(want) {
		t.Fatalf("MatchedPaths() returned %d paths, want %d", len(paths), len(want))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("MatchedPaths()[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestSearchResult_FailedPaths(t *testing.T) {
	result := &SearchResult{
		Failed: []FileFailure{
			{Target: "z.txt", Reason: errors.New("no such file")},
			{Target: "m.txt", Reason: errors.New("permission denied")},
		},
	}

	paths := result.FailedPaths()
	if len(paths) != 2 || paths[0] != "m.txt" || paths[1] != "z.txt" {
		t.Errorf("FailedPaths() = %v, want sorted [m.txt z.txt]", paths)
	}
}

package core

import (
	"encoding/binary"
	"sort"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromPath generates a deterministic ID from a file path using BLAKE2b hashing.
// This ensures that identical paths produce identical IDs, which lets the
// search engine collapse duplicate entries in a target list.
func IDFromPath(path string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(path))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Literal is a single keyword or phrase to search for.
// Internal whitespace is treated as a soft separator, not as required
// characters, so a literal survives the irregular spacing introduced by
// text extraction tools.
type Literal string

// OrGroup is a set of literals; a document satisfies the group if any
// member literal matches.
type OrGroup []Literal

// QuerySpec is the AND-of-ORs query form: a document matches iff the
// Primary literal matches and every group in Groups is satisfied.
// Groups may be empty, in which case the query degenerates to a
// single-literal search.
type QuerySpec struct {
	Primary Literal
	Groups  []OrGroup
}

// FileTarget identifies one document to search by file-system path.
// Content is loaded transiently at search time; a FileTarget owns nothing.
type FileTarget string

// ID returns the deterministic identifier for the target's path.
func (t FileTarget) ID() ID {
	return IDFromPath(string(t))
}

// MatchStatus classifies the outcome of evaluating one file.
type MatchStatus int

const (
	// StatusMatched indicates the query matched the file's contents.
	StatusMatched MatchStatus = iota + 1
	// StatusNotMatched indicates the file was read but did not match.
	StatusNotMatched
	// StatusFailed indicates the file could not be read or decoded.
	StatusFailed
)

// SearchOutcome is the per-file result produced by a single worker and
// consumed once by the result collector.
type SearchOutcome struct {
	Target  FileTarget
	Status  MatchStatus
	Context string // Snippet around the primary match, when requested
	Err     error  // Set when Status is StatusFailed
}

// FileMatch is a file that satisfied the query, with an optional context
// snippet around the first primary-literal match.
type FileMatch struct {
	Target  FileTarget
	Context string
}

// FileFailure is a file that could not be searched, with the reason.
type FileFailure struct {
	Target FileTarget
	Reason error
}

// SearchResult aggregates one search invocation: the files that matched
// and the files that failed. Both collections are unordered; callers
// needing a stable order sort by path (see MatchedPaths).
type SearchResult struct {
	Matched []FileMatch
	Failed  []FileFailure
}

// MatchedPaths returns the matching file paths sorted lexicographically.
func (r *SearchResult) MatchedPaths() []string {
	paths := make([]string, len(r.Matched))
	for i, m := range r.Matched {
		paths[i] = string(m.Target)
	}
	sort.Strings(paths)
	return paths
}

// FailedPaths returns the failed file paths sorted lexicographically.
func (r *SearchResult) FailedPaths() []string {
	paths := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		paths[i] = string(f.Target)
	}
	sort.Strings(paths)
	return paths
}

package query

import (
	"fmt"

	"github.com/poiesic/textsearch/core"
	"github.com/poiesic/textsearch/pattern"
)

// Compiled is the evaluable form of a QuerySpec. It is immutable after
// construction; workers share it read-only.
type Compiled struct {
	primary *pattern.Matcher
	groups  [][]*pattern.Matcher
}

// Compile validates the spec and builds one matcher per literal.
//
// Fails with core.ErrMissingPrimary when the primary literal is absent,
// core.ErrEmptyOrGroup when a group has no members, and
// core.ErrInvalidLiteral when any literal is empty or all whitespace.
// Compilation is pure: the same spec always compiles to an equivalent
// predicate.
func Compile(spec core.QuerySpec, opts ...pattern.Option) (*Compiled, error) {
	if err := core.ValidateQuerySpec(spec); err != nil {
		return nil, err
	}

	primary, err := pattern.Compile(string(spec.Primary), opts...)
	if err != nil {
		return nil, fmt.Errorf("primary literal: %w", err)
	}

	groups := make([][]*pattern.Matcher, len(spec.Groups))
	for i, group := range spec.Groups {
		matchers := make([]*pattern.Matcher, len(group))
		for j, literal := range group {
			m, err := pattern.Compile(string(literal), opts...)
			if err != nil {
				return nil, fmt.Errorf("group %d literal %d: %w", i, j, err)
			}
			matchers[j] = m
		}
		groups[i] = matchers
	}

	return &Compiled{primary: primary, groups: groups}, nil
}

// MatchText reports whether the document text satisfies the query.
//
// The primary literal is checked first since most documents are expected
// to fail on it. Groups are then evaluated in order; the first group with
// no satisfied member rejects the document, and within a group the first
// satisfied member accepts it.
func (c *Compiled) MatchText(text string) bool {
	if !c.primary.MatchString(text) {
		return false
	}
	for _, group := range c.groups {
		satisfied := false
		for _, m := range group {
			if m.MatchString(text) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// FindPrimary returns the byte offsets of the first primary-literal match
// in text. ok is false when the primary does not occur.
func (c *Compiled) FindPrimary(text string) (start, end int, ok bool) {
	return c.primary.FindIndex(text)
}

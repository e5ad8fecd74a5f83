package include

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"shinc/common"
)

// Set is a read-only index of fragments ordered by token.
type Set struct {
	fragments []Fragment
	byToken   map[string]int
}

// NewSet indexes fragments. Iteration order of the resulting set is natural
// order of tokens and does not depend on the order fragments were supplied
// in. Fragments sharing a token are handled according to policy: with
// DuplicatePolicyFail every repeated token is reported, with
// DuplicatePolicyLastWins the later fragment replaces the earlier one.
func NewSet(fragments []Fragment, policy common.DuplicatePolicy) (*Set, error) {
	s := &Set{
		fragments: make([]Fragment, 0, len(fragments)),
		byToken:   make(map[string]int, len(fragments)),
	}

	var err error
	for _, f := range fragments {
		i, exists := s.byToken[f.Token]
		if !exists {
			s.byToken[f.Token] = len(s.fragments)
			s.fragments = append(s.fragments, f)
			continue
		}
		if policy == common.DuplicatePolicyLastWins {
			s.fragments[i] = f
			continue
		}
		err = multierr.Append(err, &common.Error{
			Kind:  common.ErrorKindDuplicateFragmentToken,
			Path:  f.Path,
			Token: f.Token,
			Err:   fmt.Errorf("already defined by %s", s.fragments[i].Path),
		})
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(s.fragments, func(i, j int) bool {
		return natural.Less(s.fragments[i].Token, s.fragments[j].Token)
	})
	for i, f := range s.fragments {
		s.byToken[f.Token] = i
	}
	return s, nil
}

func (s *Set) Len() int {
	return len(s.fragments)
}

// Tokens returns fragment tokens in iteration order.
func (s *Set) Tokens() []string {
	tokens := make([]string, 0, len(s.fragments))
	for _, f := range s.fragments {
		tokens = append(tokens, f.Token)
	}
	return tokens
}

func (s *Set) Lookup(token string) (Fragment, bool) {
	if i, ok := s.byToken[token]; ok {
		return s.fragments[i], true
	}
	return Fragment{}, false
}

package include

import (
	"fmt"
	"slices"

	"shinc/common"
)

// Options control how directives are matched and expanded.
type Options struct {
	Match common.MatchPolicy
	// MaxDepth of zero selects single pass mode: every fragment is visited
	// once in set order and its body is inserted verbatim, so a directive
	// inside an inserted body is expanded only if a fragment later in the
	// order answers to it. A positive value enables recursive resolution of
	// fragment bodies limited to MaxDepth nesting levels (a fragment included
	// directly by a shader is at level 1).
	MaxDepth int
}

// Result of expanding a single shader body.
type Result struct {
	Text string
	// Replaced counts directive occurrences substituted in the shader body.
	Replaced int
	// Used lists tokens of fragments inserted into the shader body, in set
	// order.
	Used []string
}

type resolved struct {
	body string
	// deepest include chain starting with the fragment itself
	chain []string
	err   error
}

// Engine performs directive substitution. It never modifies the fragment set
// and is safe for concurrent use once created.
type Engine struct {
	set      *Set
	opts     Options
	resolved map[string]*resolved
}

func NewEngine(set *Set, opts Options) *Engine {
	e := &Engine{set: set, opts: opts}
	if opts.MaxDepth > 0 {
		// everything is resolved upfront so Expand only reads
		e.resolved = make(map[string]*resolved, set.Len())
		visiting := make(map[string]bool, set.Len())
		for _, f := range set.fragments {
			e.resolve(f, nil, visiting)
		}
	}
	return e
}

func (e *Engine) Options() Options {
	return e.opts
}

// resolve expands fragment body against the whole set. Failures are kept
// with the fragment and reported only when some shader actually includes it.
func (e *Engine) resolve(f Fragment, stack []string, visiting map[string]bool) *resolved {
	if r, ok := e.resolved[f.Token]; ok {
		return r
	}

	stack = append(slices.Clip(stack), f.Token)
	visiting[f.Token] = true
	defer delete(visiting, f.Token)

	r := &resolved{body: f.Body, chain: []string{f.Token}}
	for _, g := range e.set.fragments {
		directive := g.Directive()
		if index(r.body, directive, e.opts.Match) < 0 {
			continue
		}
		if visiting[g.Token] {
			r.err = &common.Error{
				Kind:  common.ErrorKindIncludeCycle,
				Path:  f.Path,
				Token: g.Token,
				Chain: append(slices.Clone(stack), g.Token),
			}
			break
		}
		sub := e.resolve(g, stack, visiting)
		if sub.err != nil {
			r.err = sub.err
			break
		}
		r.body, _ = replace(r.body, directive, sub.body, e.opts.Match)
		if len(sub.chain)+1 > len(r.chain) {
			r.chain = append([]string{f.Token}, sub.chain...)
		}
	}
	e.resolved[f.Token] = r
	return r
}

// Expand substitutes directives in body and returns resulting text. Directives
// nobody answers to are left in place. Errors are possible only in recursive
// mode.
func (e *Engine) Expand(body string) (Result, error) {
	res := Result{Text: body}
	for _, f := range e.set.fragments {
		directive := f.Directive()
		if index(res.Text, directive, e.opts.Match) < 0 {
			continue
		}

		insert := f.Body
		if e.opts.MaxDepth > 0 {
			r := e.resolved[f.Token]
			if r.err != nil {
				return Result{}, r.err
			}
			if len(r.chain) > e.opts.MaxDepth {
				return Result{}, &common.Error{
					Kind:  common.ErrorKindDepthExceeded,
					Path:  f.Path,
					Token: f.Token,
					Chain: slices.Clone(r.chain),
					Err:   fmt.Errorf("nesting level %d exceeds limit %d", len(r.chain), e.opts.MaxDepth),
				}
			}
			insert = r.body
		}

		var n int
		res.Text, n = replace(res.Text, directive, insert, e.opts.Match)
		res.Replaced += n
		res.Used = append(res.Used, f.Token)
	}
	return res, nil
}

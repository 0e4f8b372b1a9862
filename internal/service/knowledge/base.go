package knowledge

import (
	"slices"
	"strings"

	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/normalize"
	"golang.org/x/text/unicode/norm"
)

// Base is an immutable set of question/answer entries. Questions are kept in
// canonical form and sorted lexicographically, which is the order every scan
// over the base follows.
type Base struct {
	entries []core.Entry
}

// New canonicalizes and validates entries. Questions must be non-empty after
// canonicalization and unique ignoring case; answers must be non-empty. The
// first offending entry in input order is reported.
//
// canonical may drop whole words of a question but must not cut into one: a
// blacklist entry "hey" would turn "they" into "t", which then occurs in
// almost every input.
func New(entries []core.Entry, canonical func(string) string) (*Base, error) {
	seen := make(map[string]int, len(entries))
	out := make([]core.Entry, 0, len(entries))

	for i, e := range entries {
		q := canonical(e.Question)
		if q == "" {
			return nil, core.NewConfigError(core.ConfigEmptyQuestion,
				"entry %d: question %q is empty after normalization", i+1, e.Question)
		}
		if mangled(e.Question, q) {
			return nil, core.NewConfigError(core.ConfigMangledQuestion,
				"entry %d: blacklist cuts into question %q (left %q)", i+1, e.Question, q)
		}
		if strings.TrimSpace(e.Answer) == "" {
			return nil, core.NewConfigError(core.ConfigEmptyAnswer,
				"entry %d: question %q has no answer", i+1, e.Question)
		}

		key := strings.ToLower(q)
		if prev, ok := seen[key]; ok {
			return nil, core.NewConfigError(core.ConfigDuplicateQuestion,
				"entry %d: question %q duplicates entry %d (%q)", i+1, e.Question, prev+1, entries[prev].Question)
		}
		seen[key] = i

		out = append(out, core.Entry{Question: q, Answer: e.Answer})
	}

	slices.SortStableFunc(out, func(a, b core.Entry) int {
		return strings.Compare(a.Question, b.Question)
	})

	return &Base{entries: out}, nil
}

// mangled reports whether the words of canonical are not a subsequence of
// the words of question with only punctuation removed.
func mangled(question, canonical string) bool {
	words := strings.Fields(normalize.Clean(norm.NFC.String(question)))
	i := 0
	for _, w := range strings.Fields(canonical) {
		for i < len(words) && words[i] != w {
			i++
		}
		if i == len(words) {
			return true
		}
		i++
	}
	return false
}

// FromMap turns a question to answer mapping into entries ordered by question.
func FromMap(m map[string]string) []core.Entry {
	entries := make([]core.Entry, 0, len(m))
	for q, a := range m {
		entries = append(entries, core.Entry{Question: q, Answer: a})
	}
	slices.SortFunc(entries, func(a, b core.Entry) int {
		return strings.Compare(a.Question, b.Question)
	})
	return entries
}

func (b *Base) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the entries in scan order.
func (b *Base) Entries() []core.Entry {
	return slices.Clone(b.entries)
}

// Each calls fn for every entry in scan order until fn returns false.
func (b *Base) Each(fn func(e core.Entry) bool) {
	for _, e := range b.entries {
		if !fn(e) {
			return
		}
	}
}

func (b *Base) Questions() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Question
	}
	return out
}

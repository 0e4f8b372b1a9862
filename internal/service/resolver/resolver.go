package resolver

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/conversation"
	"github.com/sandevgo/footix/internal/service/knowledge"
	"github.com/sandevgo/footix/internal/service/normalize"
	"github.com/sandevgo/footix/pkg/fuzzy"
)

// Config is everything the resolver needs at construction.
//
// Fuzziness is the tolerance for characters of the input that are missing
// from a question. Zero means no tolerance: one missing character rules the
// question out.
type Config struct {
	Blacklist []string
	Knowledge []core.Entry
	Canned    core.CannedResponses
	Fuzziness float64 `validate:"gte=0,lte=1"`
}

// Result is the outcome of resolving one utterance.
type Result struct {
	Text      string
	Canonical string
	Outcome   core.Outcome
	Score     float64
	Question  string
}

// Candidate is the score of one knowledge entry against an input.
type Candidate struct {
	Question string
	Score    float64
	Exact    bool
}

type Resolver struct {
	normalizer *normalize.Normalizer
	base       *knowledge.Base
	canned     core.CannedResponses
	fuzziness  float64
	now        func() time.Time
}

var validate = validator.New()

func New(cfg Config) (*Resolver, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, configError(err)
	}

	normalizer := normalize.New(cfg.Blacklist)
	base, err := knowledge.New(cfg.Knowledge, normalizer.Normalize)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		normalizer: normalizer,
		base:       base,
		canned:     cfg.Canned,
		fuzziness:  cfg.Fuzziness,
		now:        time.Now,
	}, nil
}

func configError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return core.NewConfigError(core.ConfigInvalidValue, "%v", err)
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return core.NewConfigError(core.ConfigEmptyResponse, "canned response %s is empty", fe.Field())
	}
	return core.NewConfigError(core.ConfigInvalidValue, "%s=%v violates %s",
		fe.Field(), fe.Value(), formatRule(fe))
}

func formatRule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
}

func (r *Resolver) Base() *knowledge.Base {
	return r.base
}

func (r *Resolver) Normalize(raw string) string {
	return r.normalizer.Normalize(raw)
}

// Resolve answers raw against the knowledge base and records the turn in st.
// The first applicable rule wins: empty input, repeated question, echoed
// answer, a question found inside the input, the best fuzzy score, unknown.
func (r *Resolver) Resolve(st *conversation.State, raw string) Result {
	text := r.normalizer.Normalize(raw)
	res := r.decide(*st, text)
	st.Record(text, res.Text, r.now())
	return res
}

func (r *Resolver) decide(st conversation.State, text string) Result {
	switch {
	case text == "":
		return Result{Text: r.canned.EmptyInput, Canonical: text, Outcome: core.OutcomeEmpty}
	case st.RepeatsInput(text):
		return Result{Text: r.canned.RepeatQuestion, Canonical: text, Outcome: core.OutcomeRepeatQuestion}
	case st.EchoesOutput(text):
		return Result{Text: r.canned.RepeatAnswer, Canonical: text, Outcome: core.OutcomeRepeatAnswer}
	}
	return r.lookup(text)
}

func (r *Resolver) lookup(text string) Result {
	var (
		exact     *core.Entry
		best      core.Entry
		bestScore = -1.0
	)

	r.base.Each(func(e core.Entry) bool {
		if fuzzy.Contains(text, e.Question) {
			exact = &e
			return false
		}
		// strictly greater: the first entry keeps a tied score
		if s := r.score(e.Question, text); s > bestScore {
			best, bestScore = e, s
		}
		return true
	})

	if exact != nil {
		return Result{Text: exact.Answer, Canonical: text, Outcome: core.OutcomeExact, Score: 1, Question: exact.Question}
	}
	if bestScore > 0 {
		return Result{Text: best.Answer, Canonical: text, Outcome: core.OutcomeFuzzy, Score: bestScore, Question: best.Question}
	}
	return Result{Text: r.canned.Unknown, Canonical: text, Outcome: core.OutcomeUnknown}
}

func (r *Resolver) score(question, text string) float64 {
	if r.fuzziness > 0 {
		return fuzzy.FuzzyScore(question, text, r.fuzziness)
	}
	return fuzzy.Score(question, text)
}

// Candidates scores raw against every entry without touching any
// conversation. It returns the canonical input and one candidate per entry
// in scan order.
func (r *Resolver) Candidates(raw string) (string, []Candidate) {
	text := r.normalizer.Normalize(raw)
	out := make([]Candidate, 0, r.base.Len())
	r.base.Each(func(e core.Entry) bool {
		c := Candidate{Question: e.Question}
		if text != "" && fuzzy.Contains(text, e.Question) {
			c.Exact, c.Score = true, 1
		} else {
			c.Score = r.score(e.Question, text)
		}
		out = append(out, c)
		return true
	})
	return text, out
}

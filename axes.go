package main

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// labelUnspecified is the fallback returned by every axis when no pattern
// matches. Assembly treats it the same as an empty value.
const labelUnspecified = "unspecified"

// An axisLabel pairs one outcome with the patterns that signal it. Pattern
// order within a label never changes the outcome; only label order does.
type axisLabel struct {
	Key      string
	Patterns []*regexp2.Regexp
}

// An axis is one classification dimension: an ordered list of labels where
// the earliest label with any matching pattern wins. Axes are assembled at
// startup and never mutated afterwards, so they are safe for concurrent use
// without locking.
type axis struct {
	Name     string
	Humanize bool // replace underscores with spaces in the detected key
	Labels   []axisLabel
}

// compile builds the pattern set for one label. Patterns are written against
// lowercased input, so any uppercase literal in a pattern can never fire; the
// tables keep such entries because reclassifying long-lived records is worse
// than carrying a few dead alternations.
func compile(patterns ...string) []*regexp2.Regexp {
	out := make([]*regexp2.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp2.MustCompile(p, regexp2.None))
	}
	return out
}

// matchString reports whether re matches anywhere in text. regexp2 surfaces
// an error only when a match deadline is configured; none is set here, so a
// failed search simply reports no match.
func matchString(re *regexp2.Regexp, text string) bool {
	ok, err := re.MatchString(text)
	if err != nil {
		return false
	}
	return ok
}

// Detect returns the highest-priority label whose patterns match the text,
// or "unspecified" when nothing does. Input is lowercased once before the
// label walk.
func (a *axis) Detect(text string) string {
	text = strings.ToLower(text)
	for _, label := range a.Labels {
		for _, re := range label.Patterns {
			if matchString(re, text) {
				return a.display(label.Key)
			}
		}
	}
	return labelUnspecified
}

func (a *axis) display(key string) string {
	if a.Humanize {
		return strings.ReplaceAll(key, "_", " ")
	}
	return key
}

// LabelKeys lists every label the axis can return, in priority order and in
// display form, without the "unspecified" fallback.
func (a *axis) LabelKeys() []string {
	keys := make([]string, 0, len(a.Labels))
	for _, label := range a.Labels {
		keys = append(keys, a.display(label.Key))
	}
	return keys
}

// allAxes drives classification and the discovery endpoint. Order here is
// presentation order only; each axis carries its own label priority.
var allAxes = []*axis{
	modifierAxis,
	complicationAxis,
	stageAxis,
	temporalAxis,
	lateralityAxis,
	locationAxis,
	etiologyAxis,
	contextAxis,
}

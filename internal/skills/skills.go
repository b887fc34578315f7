package skills

import (
	"sort"
	"strings"
)

// Tag is a recognized skill identifier from the fixed vocabulary.
// Tags are lowercase and shared by value across the application.
type Tag string

// DefaultVocabulary returns the built-in skill vocabulary.
// Matching is substring-based, so multi-word tags like "machine learning"
// only hit when the exact phrase appears in the text.
func DefaultVocabulary() []Tag {
	return []Tag{
		"python",
		"machine learning",
		"data analysis",
		"sql",
		"java",
		"communication",
		"problem solving",
		"deep learning",
	}
}

// Set is a set of skill tags.
type Set map[Tag]bool

// Extract returns the subset of vocabulary whose literal string appears in
// text. The text is lower-cased first; no tokenization or stemming is done.
// Pure and deterministic: the same inputs always produce the same set.
func Extract(text string, vocabulary []Tag) Set {
	found := make(Set)
	lowered := strings.ToLower(text)
	for _, tag := range vocabulary {
		if strings.Contains(lowered, string(tag)) {
			found[tag] = true
		}
	}
	return found
}

// Intersect returns the number of tags present in both sets.
func (s Set) Intersect(other Set) int {
	n := 0
	for tag := range s {
		if other[tag] {
			n++
		}
	}
	return n
}

// Minus returns the tags in s that are absent from other, sorted for
// deterministic display.
func (s Set) Minus(other Set) []Tag {
	var out []Tag
	for tag := range s {
		if !other[tag] {
			out = append(out, tag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Sorted returns the set's tags in lexical order.
func (s Set) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MatchPercent computes the rounded percentage of jd tags also present in
// resume. The denominator is floored at 1 so an empty job description yields
// 0 instead of a division by zero.
func MatchPercent(resume, jd Set) int {
	denom := len(jd)
	if denom < 1 {
		denom = 1
	}
	return int(float64(resume.Intersect(jd))/float64(denom)*100 + 0.5)
}

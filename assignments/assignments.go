// Package assignments compares pairs of section-range assignments, counting
// pairs where one range fully contains the other and pairs which overlap.
package assignments

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"go.advent.dev/aoc2022/puzzle"
)

var (
	// ErrParse is returned for a line which isn't a pair of ranges.
	ErrParse = errors.New("malformed assignment pair")
	// ErrInvertedRange is returned for a range whose start exceeds its end.
	ErrInvertedRange = errors.New("range start exceeds end")
)

// Range is an inclusive range of section IDs.
type Range struct {
	Lo, Hi uint32
}

// Contains returns whether |o| lies entirely within |r|.
func (r Range) Contains(o Range) bool { return r.Lo <= o.Lo && o.Hi <= r.Hi }

// Overlaps returns whether |r| and |o| share at least one section.
func (r Range) Overlaps(o Range) bool { return r.Lo <= o.Hi && o.Lo <= r.Hi }

// Pair is the assignments of two elves.
type Pair [2]Range

// Nested returns whether either Range of the Pair contains the other.
func (p Pair) Nested() bool { return p[0].Contains(p[1]) || p[1].Contains(p[0]) }

// Overlapping returns whether the Ranges of the Pair overlap.
func (p Pair) Overlapping() bool { return p[0].Overlaps(p[1]) }

// ParsePair parses a line such as "2-4,6-8".
func ParsePair(line string) (Pair, error) {
	var m = rePair.FindStringSubmatch(line)
	if m == nil {
		return Pair{}, errors.WithMessagef(ErrParse, "%q", line)
	}

	var n [4]uint32
	for i := range n {
		var v, err = strconv.ParseUint(m[i+1], 10, 32)
		if err != nil {
			return Pair{}, errors.WithMessagef(ErrParse, "%q: %s", line, err)
		}
		n[i] = uint32(v)
	}

	var p = Pair{{n[0], n[1]}, {n[2], n[3]}}
	for _, r := range p {
		if r.Lo > r.Hi {
			return Pair{}, errors.WithMessagef(ErrInvertedRange, "%q: %d-%d", line, r.Lo, r.Hi)
		}
	}
	return p, nil
}

// ParsePairs parses every line of |lines|.
func ParsePairs(lines []string) ([]Pair, error) {
	var out = make([]Pair, 0, len(lines))

	for i, line := range lines {
		var p, err = ParsePair(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", i+1)
		}
		out = append(out, p)
	}
	return out, nil
}

// Count returns the number of |pairs| matching |fn|.
func Count(pairs []Pair, fn func(Pair) bool) int {
	var n int
	for _, p := range pairs {
		if fn(p) {
			n++
		}
	}
	return n
}

// Solve counts nested pairs (part 1) and overlapping pairs (part 2).
func Solve(lines []string) (puzzle.Answer, error) {
	var pairs, err = ParsePairs(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var nested, overlapping = Count(pairs, Pair.Nested), Count(pairs, Pair.Overlapping)

	log.WithFields(log.Fields{
		"pairs":       len(pairs),
		"nested":      nested,
		"overlapping": overlapping,
	}).Debug("compared assignments")

	return puzzle.NewAnswer(nested, overlapping), nil
}

var rePair = regexp.MustCompile(`^([0-9]+)-([0-9]+),([0-9]+)-([0-9]+)$`)

// Package signal locates start-of-packet and start-of-message markers
// within a datastream: the first position preceded by a window of distinct
// characters.
package signal

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"go.advent.dev/aoc2022/puzzle"
)

// Window sizes of the two marker kinds.
const (
	PacketWindow  = 4
	MessageWindow = 14
)

var (
	// ErrNoMarker is returned when no window of distinct characters exists.
	ErrNoMarker = errors.New("no marker found")
	// ErrParse is returned for an empty datastream.
	ErrParse = errors.New("empty datastream")
)

// FindMarker returns the smallest index i >= |n| such that data[i-n:i]
// holds |n| distinct bytes.
func FindMarker(data []byte, n int) (int, error) {
	if n <= 0 {
		return 0, errors.Errorf("invalid window size %d", n)
	}
	var counts [256]int
	var distinct int

	for i, b := range data {
		if counts[b]++; counts[b] == 1 {
			distinct++
		}
		if i >= n {
			var out = data[i-n]
			if counts[out]--; counts[out] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}
	return 0, errors.WithMessagef(ErrNoMarker, "window of %d in %d bytes", n, len(data))
}

// Solve finds the start-of-packet (part 1) and start-of-message (part 2)
// markers of the datastream on the first line of |lines|.
func Solve(lines []string) (puzzle.Answer, error) {
	if len(lines) == 0 || lines[0] == "" {
		return puzzle.Answer{}, ErrParse
	}
	var data = []byte(lines[0])

	packet, err := FindMarker(data, PacketWindow)
	if err != nil {
		return puzzle.Answer{}, errors.WithMessage(err, "start-of-packet")
	}
	message, err := FindMarker(data, MessageWindow)
	if err != nil {
		return puzzle.Answer{}, errors.WithMessage(err, "start-of-message")
	}

	log.WithFields(log.Fields{"packet": packet, "message": message}).Debug("found markers")
	return puzzle.NewAnswer(packet, message), nil
}

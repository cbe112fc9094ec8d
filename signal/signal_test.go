package signal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFindMarkerSamples(t *testing.T) {
	var cases = []struct {
		data            string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		var got, err = FindMarker([]byte(tc.data), PacketWindow)
		require.NoError(t, err)
		require.Equal(t, tc.packet, got, tc.data)

		got, err = FindMarker([]byte(tc.data), MessageWindow)
		require.NoError(t, err)
		require.Equal(t, tc.message, got, tc.data)
	}
}

func TestFindMarkerEdges(t *testing.T) {
	var got, err = FindMarker([]byte("abcd"), 4)
	require.NoError(t, err)
	require.Equal(t, 4, got)

	got, err = FindMarker([]byte("a"), 1)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	_, err = FindMarker([]byte("abc"), 4)
	require.True(t, errors.Is(err, ErrNoMarker))

	_, err = FindMarker([]byte("aaaaaaaaaa"), 2)
	require.EqualError(t, err, "window of 2 in 10 bytes: no marker found")

	_, err = FindMarker([]byte("abc"), 0)
	require.Error(t, err)
}

func TestSolve(t *testing.T) {
	var answer, err = Solve([]string{"mjqjpqmgbljsphdztnvjfqwrcgsmlb"})
	require.NoError(t, err)
	require.Equal(t, "7", answer.Part1)
	require.Equal(t, "19", answer.Part2)

	_, err = Solve(nil)
	require.Equal(t, ErrParse, err)

	_, err = Solve([]string{"abcdabcd"})
	require.EqualError(t, err, "start-of-message: window of 14 in 8 bytes: no marker found")
}

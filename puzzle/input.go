package puzzle

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// maxLineSize bounds a single input line. Day 6 inputs are one long line.
const maxLineSize = 1 << 20

// Stdin is the input path which reads from os.Stdin rather than |fs|.
const Stdin = "-"

// ReadLines reads the input at |path| from |fs| and returns its lines, with
// line terminators ("\n" or "\r\n") removed. A trailing terminator does not
// produce an empty final line.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	var r io.Reader

	if path == Stdin {
		r = os.Stdin
	} else {
		var f, err = fs.Open(path)
		if err != nil {
			return nil, errors.WithMessagef(err, "opening input %s", path)
		}
		defer f.Close()
		r = f
	}

	var lines, err = ScanLines(r)
	if err != nil {
		return nil, errors.WithMessagef(err, "reading input %s", path)
	}
	log.WithFields(log.Fields{"path": path, "lines": len(lines)}).Debug("read puzzle input")
	return lines, nil
}

// ScanLines splits |r| into lines.
func ScanLines(r io.Reader) ([]string, error) {
	var sc = bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

package dirtree

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// ErrParse is returned for a transcript line which is neither a command nor
// a directory entry.
var ErrParse = errors.New("unrecognized transcript line")

// RecordKind enumerates the kinds of transcript Records.
type RecordKind int

const (
	// List is the `$ ls` command.
	List RecordKind = iota
	// ChangeDirectory is the `$ cd <path>` command.
	ChangeDirectory
	// Directory is a `dir <name>` entry of a listing.
	Directory
	// File is a `<size> <name>` entry of a listing.
	File
)

func (k RecordKind) String() string {
	switch k {
	case List:
		return "ls"
	case ChangeDirectory:
		return "cd"
	case Directory:
		return "dir"
	case File:
		return "file"
	}
	return "RecordKind(" + strconv.Itoa(int(k)) + ")"
}

// IsCommand returns whether the kind is a `$` command, rather than an entry.
func (k RecordKind) IsCommand() bool { return k == List || k == ChangeDirectory }

// Record is a single parsed transcript line. Path is set for every kind
// except List, and Size only for File.
type Record struct {
	Kind RecordKind
	Path string
	Size uint64
}

// ParseRecord parses a transcript line. The whole line must match:
//
//	"$ ls"
//	"$ cd " PATH
//	"dir " PATH
//	UINT64 " " PATH
//
// where PATH is a run of lowercase letters, '.' and '/'.
func ParseRecord(line string) (Record, error) {
	var m []string

	if reList.MatchString(line) {
		return Record{Kind: List}, nil
	} else if m = reChangeDirectory.FindStringSubmatch(line); m != nil {
		return Record{Kind: ChangeDirectory, Path: m[1]}, nil
	} else if m = reDirectory.FindStringSubmatch(line); m != nil {
		return Record{Kind: Directory, Path: m[1]}, nil
	} else if m = reFile.FindStringSubmatch(line); m != nil {
		var size, err = strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return Record{}, errors.WithMessagef(ErrParse, "%q: size: %s", line, err)
		}
		return Record{Kind: File, Path: m[2], Size: size}, nil
	}
	return Record{}, errors.WithMessagef(ErrParse, "%q", line)
}

// ParseTranscript parses every line of a transcript. Errors carry the
// 1-based line number.
func ParseTranscript(lines []string) ([]Record, error) {
	var out = make([]Record, 0, len(lines))

	for i, line := range lines {
		var rec, err = ParseRecord(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", i+1)
		}
		out = append(out, rec)
	}
	return out, nil
}

var (
	rePath = `([a-z./]+)`

	reList            = regexp.MustCompile(`^\$ ls$`)
	reChangeDirectory = regexp.MustCompile(`^\$ cd ` + rePath + `$`)
	reDirectory       = regexp.MustCompile(`^dir ` + rePath + `$`)
	reFile            = regexp.MustCompile(`^([0-9]+) ` + rePath + `$`)
)

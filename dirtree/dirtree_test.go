package dirtree

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	gc "gopkg.in/check.v1"
)

type DirTreeSuite struct{}

func (s *DirTreeSuite) TestParseRecordCases(c *gc.C) {
	var cases = []struct {
		line   string
		expect Record
		err    string
	}{
		{"$ ls", Record{Kind: List}, ""},
		{"$ cd /", Record{Kind: ChangeDirectory, Path: "/"}, ""},
		{"$ cd ..", Record{Kind: ChangeDirectory, Path: ".."}, ""},
		{"$ cd gcfbqh", Record{Kind: ChangeDirectory, Path: "gcfbqh"}, ""},
		{"$ cd a/b/c.txt", Record{Kind: ChangeDirectory, Path: "a/b/c.txt"}, ""},
		{"dir btcjthr", Record{Kind: Directory, Path: "btcjthr"}, ""},
		{"89668 bplz.rdp", Record{Kind: File, Path: "bplz.rdp", Size: 89668}, ""},

		{"$ ls -l", Record{}, `"\$ ls -l": unrecognized transcript line`},
		{"$ ls ", Record{}, `"\$ ls ": unrecognized transcript line`},
		{"$ cd", Record{}, `"\$ cd": unrecognized transcript line`},
		{"dir Upper", Record{}, `"dir Upper": unrecognized transcript line`},
		{"12 ", Record{}, `"12 ": unrecognized transcript line`},
		{"-12 a", Record{}, `"-12 a": unrecognized transcript line`},
		{"", Record{}, `"": unrecognized transcript line`},
		{"99999999999999999999999 x", Record{}, `"99999999999999999999999 x": size: .* value out of range: unrecognized transcript line`},
	}
	for _, tc := range cases {
		var rec, err = ParseRecord(tc.line)

		if tc.err == "" {
			c.Check(err, gc.IsNil)
			c.Check(rec, gc.DeepEquals, tc.expect)
		} else {
			c.Check(err, gc.ErrorMatches, tc.err)
			c.Check(errors.Is(err, ErrParse), gc.Equals, true)
		}
	}
}

func (s *DirTreeSuite) TestParseTranscriptReportsLine(c *gc.C) {
	var _, err = ParseTranscript([]string{"$ cd /", "$ ls", "bogus line"})
	c.Check(err, gc.ErrorMatches, `line 3: "bogus line": unrecognized transcript line`)
	c.Check(errors.Cause(err), gc.Equals, ErrParse)
}

func (s *DirTreeSuite) TestBuildSampleTree(c *gc.C) {
	var tree, err = Load(sampleTranscript)
	c.Assert(err, gc.IsNil)

	var a, d = tree.Node(Root).Children["a"], tree.Node(Root).Children["d"]
	var e = tree.Node(a).Children["e"]

	c.Check(TotalSize(tree, e), gc.Equals, uint64(584))
	c.Check(TotalSize(tree, a), gc.Equals, uint64(94853))
	c.Check(TotalSize(tree, d), gc.Equals, uint64(24933642))
	c.Check(TotalSize(tree, Root), gc.Equals, uint64(48381165))
	c.Check(Sizes(tree)[a], gc.Equals, uint64(94853))

	c.Check(tree.IsDir(a), gc.Equals, true)
	c.Check(tree.IsDir(tree.Node(a).Children["f"]), gc.Equals, false)
	c.Check(tree.Path(e), gc.Equals, "/a/e")
	c.Check(tree.Path(Root), gc.Equals, "/")
	c.Check(tree.ChildNames(Root), gc.DeepEquals, []string{"a", "b.txt", "c.dat", "d"})

	var paths []string
	for id := range Directories(tree) {
		paths = append(paths, tree.Path(id))
	}
	c.Check(paths, gc.DeepEquals, []string{"/", "/a", "/a/e", "/d"})

	c.Check(Listing(tree), gc.DeepEquals, []DirectorySize{
		{"/", 48381165},
		{"/a", 94853},
		{"/a/e", 584},
		{"/d", 24933642},
	})
}

func (s *DirTreeSuite) TestDirectoriesStopsEarly(c *gc.C) {
	var tree, err = Load(sampleTranscript)
	c.Assert(err, gc.IsNil)

	var n int
	for range Directories(tree) {
		if n++; n == 2 {
			break
		}
	}
	c.Check(n, gc.Equals, 2)
}

func (s *DirTreeSuite) TestSampleQueries(c *gc.C) {
	var answer, err = Solve(sampleTranscript)
	c.Assert(err, gc.IsNil)
	c.Check(answer.Part1, gc.Equals, "95437")
	c.Check(answer.Part2, gc.Equals, "24933642")
}

func (s *DirTreeSuite) TestSmallTranscript(c *gc.C) {
	var tree, err = Load([]string{
		"$ cd /", "$ ls", "dir a", "100 b.txt", "$ cd a", "$ ls", "50 c.txt",
	})
	c.Assert(err, gc.IsNil)

	c.Check(TotalSize(tree, Root), gc.Equals, uint64(150))
	// Both "/" (150) and "/a" (50) are under the threshold.
	c.Check(SumSmall(tree, DefaultLimits), gc.Equals, uint64(200))
}

func (s *DirTreeSuite) TestRepeatedEntriesAreIdempotent(c *gc.C) {
	var tree, err = Load([]string{
		"$ cd /", "$ ls", "dir a", "100 b.txt",
		"$ ls", "dir a", "100 b.txt",
		"$ cd a", "$ ls", "7 x", "$ cd ..", "$ cd a", "$ ls", "7 x",
	})
	c.Assert(err, gc.IsNil)

	c.Check(tree.Len(), gc.Equals, 4)
	c.Check(tree.Node(Root).Children, gc.HasLen, 2)
	c.Check(TotalSize(tree, Root), gc.Equals, uint64(107))
}

func (s *DirTreeSuite) TestTotalSizeIndependentOfTraversalOrder(c *gc.C) {
	var orders = [][]string{
		{"$ cd /", "$ ls", "dir x", "dir y", "1 f", "$ cd x", "$ ls", "20 g", "$ cd ..", "$ cd y", "$ ls", "300 h"},
		{"$ cd /", "$ cd y", "$ ls", "300 h", "$ cd ..", "$ cd x", "$ ls", "20 g", "$ cd ..", "$ ls", "1 f"},
		{"$ cd x", "$ ls", "20 g", "$ cd ..", "$ ls", "1 f", "dir y", "$ cd y", "$ ls", "300 h"},
	}
	for _, transcript := range orders {
		var tree, err = Load(transcript)
		c.Assert(err, gc.IsNil)
		c.Check(TotalSize(tree, Root), gc.Equals, uint64(321))
		c.Check(tree.Len(), gc.Equals, 6)
	}
}

func (s *DirTreeSuite) TestChangeDirectoryCreatesAndNavigates(c *gc.C) {
	var b = NewBuilder()

	c.Check(b.Apply(Record{Kind: ChangeDirectory, Path: "a"}), gc.IsNil)
	c.Check(b.Apply(Record{Kind: ChangeDirectory, Path: "b"}), gc.IsNil)
	c.Check(b.Tree().Path(b.Cursor()), gc.Equals, "/a/b")

	c.Check(b.Apply(Record{Kind: ChangeDirectory, Path: ".."}), gc.IsNil)
	c.Check(b.Tree().Path(b.Cursor()), gc.Equals, "/a")
	c.Check(b.Apply(Record{Kind: ChangeDirectory, Path: "/"}), gc.IsNil)
	c.Check(b.Tree().Path(b.Cursor()), gc.Equals, "/a") // `cd /` is a no-op.

	c.Check(b.Apply(Record{Kind: ChangeDirectory, Path: ".."}), gc.IsNil)
	c.Check(b.Cursor(), gc.Equals, Root)
	c.Check(b.Apply(Record{Kind: ChangeDirectory, Path: ".."}), gc.Equals, ErrInvalidTraversal)
}

func (s *DirTreeSuite) TestBuildReportsTraversalError(c *gc.C) {
	var _, err = Load([]string{"$ cd /", "$ cd .."})
	c.Check(err, gc.ErrorMatches, `record 2 \(cd \.\.\): cannot change to parent of root directory`)
	c.Check(errors.Is(err, ErrInvalidTraversal), gc.Equals, true)
}

func (s *DirTreeSuite) TestCapacityErrors(c *gc.C) {
	var tree, err = Load([]string{"$ ls", "600 big", "dir d", "$ cd d", "$ ls", "50 small"})
	c.Assert(err, gc.IsNil)

	// Used space exceeds capacity.
	_, err = SmallestToFree(tree, Limits{Capacity: 500, Required: 100})
	c.Check(errors.Is(err, ErrCapacity), gc.Equals, true)
	c.Check(err, gc.ErrorMatches, `used 650 > capacity 500: .*`)

	// Already more free space than required.
	_, err = SmallestToFree(tree, Limits{Capacity: 1000, Required: 100})
	c.Check(errors.Is(err, ErrCapacity), gc.Equals, true)

	// Exactly enough free space: every directory qualifies; the smallest wins.
	size, err := SmallestToFree(tree, Limits{Capacity: 1000, Required: 350})
	c.Check(err, gc.IsNil)
	c.Check(size, gc.Equals, uint64(50))

	size, err = SmallestToFree(tree, Limits{Capacity: 1000, Required: 500})
	c.Check(err, gc.IsNil)
	c.Check(size, gc.Equals, uint64(650))

	// Required exceeds what even deleting the root could free.
	_, err = SmallestToFree(tree, Limits{Capacity: 1000, Required: 2000})
	c.Check(errors.Is(err, ErrNoCandidate), gc.Equals, true)
}

func (s *DirTreeSuite) TestBuildLogsRecordCounts(c *gc.C) {
	var hook = logtest.NewGlobal()
	defer hook.Reset()
	defer log.SetLevel(log.GetLevel())
	log.SetLevel(log.DebugLevel)

	var _, err = Load(sampleTranscript)
	c.Assert(err, gc.IsNil)

	var entry = hook.LastEntry()
	c.Assert(entry, gc.NotNil)
	c.Check(entry.Message, gc.Equals, "built directory tree")
	c.Check(entry.Data["nodes"], gc.Equals, 14)
	c.Check(entry.Data["commands"], gc.Equals, 10)
	c.Check(entry.Data["entries"], gc.Equals, 13)
}

func (s *DirTreeSuite) TestRecordKindString(c *gc.C) {
	c.Check(List.String(), gc.Equals, "ls")
	c.Check(File.String(), gc.Equals, "file")
	c.Check(RecordKind(9).String(), gc.Equals, "RecordKind(9)")
	c.Check(ChangeDirectory.IsCommand(), gc.Equals, true)
	c.Check(Directory.IsCommand(), gc.Equals, false)
}

var sampleTranscript = strings.Split(strings.TrimSpace(`
$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k`), "\n")

var _ = gc.Suite(&DirTreeSuite{})

func Test(t *testing.T) { gc.TestingT(t) }

package untracked_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"diff-search/internal/diff"
	"diff-search/internal/untracked"

	"github.com/stretchr/testify/suite"
)

type SynthSuite struct {
	suite.Suite
}

func (s *SynthSuite) Test_Fragment_Round_Trips_Through_Parser() {

	content := "alpha\nbeta\ngamma\n"

	fragment := untracked.Fragment("notes/new.txt", content)
	records := diff.Parse(diff.Marker(diff.Untracked) + "\n" + fragment)

	s.Require().Len(records, 3)

	want := []string{"alpha", "beta", "gamma"}
	for i, r := range records {
		s.Equal("notes/new.txt", r.File)
		s.Equal(i+1, r.Line)
		s.Equal(want[i], r.Content)
		s.Equal(diff.Added, r.Kind)
		s.Equal(diff.Untracked, r.Source)
	}
}

func (s *SynthSuite) Test_Fragment_Header_Shape() {

	fragment := untracked.Fragment("f.txt", "hello\n")

	lines := strings.Split(strings.TrimSuffix(fragment, "\n"), "\n")
	s.Require().Len(lines, 7)

	s.Equal("diff --git a/dev/null b/f.txt", lines[0])
	s.Equal("new file mode 100644", lines[1])
	s.Equal("index 0000000..48c5fe8 100644", lines[2])
	s.Equal("--- /dev/null", lines[3])
	s.Equal("+++ b/f.txt", lines[4])
	s.Equal("@@ -0,0 +1,1 @@", lines[5])
	s.Equal("+hello", lines[6])
}

func (s *SynthSuite) Test_Fingerprint_Fixtures() {

	// These literals pin the rolling hash; they change only if the
	// hash does, which downstream treats as a breaking change.
	s.Equal("0", untracked.Fingerprint(""))
	s.Equal("61", untracked.Fingerprint("a"))
	s.Equal("48c5fe8", untracked.Fingerprint("hello\n"))
	s.Equal("2abaf7f", untracked.Fingerprint("alpha\nbeta\ngamma\n"))
}

func (s *SynthSuite) Test_Synthesize_Skips_Per_Policy() {

	root := s.T().TempDir()

	write := func(name string, data []byte) {
		s.Require().NoError(os.MkdirAll(filepath.Dir(filepath.Join(root, name)), 0o755))
		s.Require().NoError(os.WriteFile(filepath.Join(root, name), data, 0o644))
	}

	write("keep.txt", []byte("kept line\n"))
	write("empty.txt", nil)
	write("binary.bin", []byte{0x00, 0x01, 0x02})
	write("big.txt", []byte(strings.Repeat("x", 64)))

	files := untracked.NewFiles(root, 32, nil)

	out := files.Synthesize([]string{
		"keep.txt", "empty.txt", "binary.bin", "big.txt", "missing.txt",
	})

	records := diff.Parse(diff.Marker(diff.Untracked) + "\n" + out)
	s.Require().Len(records, 1)
	s.Equal("keep.txt", records[0].File)
	s.Equal("kept line", records[0].Content)
}

func (s *SynthSuite) Test_Missing_Section_When_Nothing_Included() {

	files := untracked.NewFiles(s.T().TempDir(), 1<<20, nil)
	s.Equal("", files.Synthesize(nil))
}

func TestSynthSuite(t *testing.T) {
	suite.Run(t, new(SynthSuite))
}

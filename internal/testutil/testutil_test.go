package testutil

import "testing"

type outputCase struct {
	out    []byte
	golden string
}

func (c outputCase) Output() ([]byte, string) {
	return c.out, c.golden
}

func TestCompareGoldenFileCRLF(t *testing.T) {
	CompareGoldenFile(t, outputCase{
		out:    []byte("first line\r\nsecond line\r\n"),
		golden: "crlf",
	})
}

func TestCompareGoldenFileNoOutput(t *testing.T) {
	CompareGoldenFile(t, outputCase{golden: "missing"})
}

func TestNormalizeNewlines(t *testing.T) {
	got := string(normalizeNewlines([]byte("a\r\nb\nc\r\n")))
	if got != "a\nb\nc\n" {
		t.Errorf("got %q, want %q", got, "a\nb\nc\n")
	}
}

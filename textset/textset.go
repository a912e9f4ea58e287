package textset

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/mway"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// reportEvery is the segment cadence for loader progress broadcasts.
const reportEvery = 64

// FromString collects the distinct tokens of s into an ordered tree.
// A non-positive degree selects the default tree degree.
func FromString(s string, degree int) (*mway.Tree[string], error) {
	return FromReader(strings.NewReader(s), degree)
}

// FromReader collects the distinct tokens of a text into an ordered tree.
//
// The text is cut at UAX#14 line-wrap opportunities; each segment, stripped
// of surrounding whitespace, counts as one token. Punctuation stays attached
// to its token. Duplicate tokens are absorbed by the tree's deduplicating
// insert.
func FromReader(r io.Reader, degree int) (*mway.Tree[string], error) {
	tree := mway.NewOrdered[string](degree)
	if err := insertTokens(tree, bufio.NewReader(r), nil); err != nil {
		return nil, err
	}
	return tree, nil
}

// insertTokens segments the input and inserts every non-empty token.
//
// report, if non-nil, is called every reportEvery segments with the running
// counts of scanned segments and inserted (distinct) tokens.
func insertTokens(tree *mway.Tree[string], r *bufio.Reader, report func(scanned, inserted int)) error {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(r)
	scanned, inserted := 0, 0
	for segmenter.Next() {
		scanned++
		token := strings.TrimSpace(string(segmenter.Bytes()))
		if token == "" {
			continue
		}
		if _, isNew := tree.Insert(token); isNew {
			inserted++
		}
		if report != nil && scanned%reportEvery == 0 {
			report(scanned, inserted)
		}
	}
	if err := segmenter.Err(); err != nil {
		tracer().Errorf("textset segmentation: %s", err.Error())
		return err
	}
	return nil
}

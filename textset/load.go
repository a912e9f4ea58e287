package textset

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/mway"
)

// Progress is the event type broadcast by a Loader while a file is read.
type Progress struct {
	Segments int  // text segments scanned so far
	Tokens   int  // distinct tokens inserted so far
	Done     bool // set on the final event, when the tree is complete
}

// Loader reads a text file in the background and collects its distinct
// tokens into an ordered tree.
//
// The tree is owned by the loader goroutine until loading finishes; clients
// obtain it through Wait. Progress events may be observed concurrently
// through Events.
type Loader struct {
	tree *mway.Tree[string]
	cast *caster.Caster // broadcaster for progress during async loading
	done chan struct{}
	err  error // set before done is closed
}

// Load opens a text file, which must be a regular file, and starts reading
// its tokens into a tree in the background. Opening is done synchronously,
// so a missing or irregular file fails immediately.
//
// A non-positive degree selects the default tree degree.
func Load(name string, degree int) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	ld := &Loader{
		tree: mway.NewOrdered[string](degree),
		cast: caster.New(nil), // we will broadcast messages while tokens are loaded
		done: make(chan struct{}),
	}
	go ld.run(file)
	return ld, nil
}

func (ld *Loader) run(file *os.File) {
	defer ld.cast.Close()
	defer close(ld.done)
	defer file.Close()
	ld.err = insertTokens(ld.tree, bufio.NewReader(file), func(scanned, inserted int) {
		ld.cast.Pub(Progress{Segments: scanned, Tokens: inserted})
	})
	if ld.err != nil {
		tracer().Errorf("textset loader: %s", ld.err.Error())
	}
	ld.cast.Pub(Progress{Tokens: ld.tree.Len(), Done: true})
}

// Events subscribes to progress broadcasts. The subscription ends when ctx is
// canceled or when loading completes; ok is false if loading has already
// completed.
func (ld *Loader) Events(ctx context.Context) (ch <-chan interface{}, ok bool) {
	return ld.cast.Sub(ctx, reportEvery)
}

// Wait blocks until loading has finished and returns the completed token
// tree. The tree must not be used before Wait has returned.
func (ld *Loader) Wait() (*mway.Tree[string], error) {
	<-ld.done
	return ld.tree, ld.err
}

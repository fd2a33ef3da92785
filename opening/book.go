// Package opening holds a small opening book keyed by exact move history.
package opening

import (
	"strings"

	"golang.org/x/exp/maps"
)

// Book maps a game's move history to a prepared reply. A history is the
// game's SAN moves joined by single spaces, e.g. "e4 e5 Nf3 Nc6".
type Book struct {
	replies map[string]string
}

// NewBook returns the built-in book: the Ruy Lopez Berlin Defense and the
// Accelerated Dragon from both sides.
func NewBook() *Book {
	b := &Book{replies: make(map[string]string, len(defaultLines))}
	for _, l := range defaultLines {
		b.replies[l.history] = l.reply
	}
	return b
}

// NewBookFrom builds a book from explicit history-reply pairs.
func NewBookFrom(replies map[string]string) *Book {
	return &Book{replies: maps.Clone(replies)}
}

// Lookup returns the prepared reply for a move history. Only an exact
// match hits: one move past the end of a line already misses.
func (b *Book) Lookup(history []string) (string, bool) {
	reply, ok := b.replies[strings.Join(history, " ")]
	return reply, ok
}

// Size returns the number of distinct histories in the book.
func (b *Book) Size() int {
	return len(b.replies)
}

// Lines returns a copy of the whole book.
func (b *Book) Lines() map[string]string {
	return maps.Clone(b.replies)
}

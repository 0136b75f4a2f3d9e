// Package assets embeds the default word list so the game runs without any
// configured word file.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// DefaultWordsName is the name of the embedded word list.
const DefaultWordsName = "words.txt"

// OpenWords opens the embedded default word list. Callers close it.
func OpenWords() (fs.File, error) {
	return FS.Open(DefaultWordsName)
}

// Package assets embeds the default difficulty catalog.
package assets

import (
	"embed"
	"io/fs"
)

// DifficultiesFile is the embedded catalog, one profile per line:
// name min max attempts. Blank lines and '#' comments are ignored.
const DifficultiesFile = "difficulties.txt"

//go:embed difficulties.txt
var FS embed.FS

// OpenDifficulties opens the embedded catalog.
func OpenDifficulties() (fs.File, error) {
	return FS.Open(DifficultiesFile)
}

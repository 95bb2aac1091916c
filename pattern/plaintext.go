// Package pattern reads Life patterns in the plaintext (.cells) format.
//
// Lines starting with '!' are comments. 'O' or '*' marks a living cell and
// '.' a dead one. Rows shorter than the widest row are padded with dead cells.
package pattern

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrSyntax is returned for characters outside the plaintext alphabet
var ErrSyntax = errors.New("invalid pattern character")

// Parse reads a plaintext pattern into a row-major matrix, matrix[y][x]
func Parse(r io.Reader) ([][]bool, error) {
	var (
		rows    [][]bool
		width   int
		lineNum int
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}

		row := make([]bool, 0, len(line))
		for col, ch := range line {
			switch ch {
			case 'O', '*':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, errors.Wrapf(ErrSyntax, "[Parse] line %d col %d: %q", lineNum, col+1, ch)
			}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to read pattern")
	}

	for y, row := range rows {
		if len(row) < width {
			rows[y] = append(row, make([]bool, width-len(row))...)
		}
	}
	return rows, nil
}

// Load parses the plaintext pattern file at path
func Load(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open pattern: %+v", path)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] %+v", path)
	}
	return rows, nil
}

package model

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/utils"
)

const (
	plaintextAlive   = 'O'
	plaintextDead    = '.'
	plaintextComment = '!'
)

// FormatPlaintext writes the state as a plaintext (.cells) grid covering the
// whole board, one row per line.
func FormatPlaintext(board Board, state State) string {
	var sb strings.Builder
	sb.Grow((board.Width() + 1) * board.Height())
	for y := range board.Height() {
		for x := range board.Width() {
			if state.Contains(Cell{X: x, Y: y}) {
				sb.WriteByte(plaintextAlive)
			} else {
				sb.WriteByte(plaintextDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParsePlaintext reads a plaintext (.cells) pattern. Lines starting with '!'
// are comments, 'O' or '*' mark live cells and '.' or ' ' mark dead ones.
// Coordinates are relative to the top-left corner of the pattern.
func ParsePlaintext(text string) ([]Cell, error) {
	var (
		cells   []Cell
		y       int
		scanner = bufio.NewScanner(strings.NewReader(text))
	)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) > 0 && line[0] == plaintextComment {
			continue
		}
		for x, r := range line {
			switch r {
			case plaintextAlive, '*':
				cells = append(cells, Cell{X: x, Y: y})
			case plaintextDead, ' ':
			default:
				return nil, errors.Wrapf(utils.ErrInvalidConfiguration, "[ParsePlaintext] unexpected %q at line %d", r, y+1)
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePlaintext] failed to scan pattern")
	}
	return cells, nil
}

package formats

import (
	"strings"
)

// EmptyToken is the tile token used to pad short rows.
const EmptyToken = "0"

// ParseTiles splits comma-separated tile rows into tokens.
// Carriage returns are stripped and blank lines skipped. When width is
// positive every row is padded with EmptyToken or truncated to width.
func ParseTiles(data string, width int) [][]string {
	var rows [][]string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\r", ""))
		if line == "" {
			continue
		}

		tokens := strings.Split(line, ",")
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}

		if width > 0 {
			for len(tokens) < width {
				tokens = append(tokens, EmptyToken)
			}
			tokens = tokens[:width]
		}
		rows = append(rows, tokens)
	}
	return rows
}

// FormatTiles joins token rows back into CSV text.
func FormatTiles(rows [][]string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}

package nearest

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const csvHeader = "pantone,hex,deltaE"

// WriteCSV exports matches as CRLF-separated rows under a
// "pantone,hex,deltaE" header. Every data cell is double-quoted and
// distances are rendered with two decimals.
func WriteCSV(w io.Writer, matches []Match) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(csvHeader); err != nil {
		return err
	}
	for _, m := range matches {
		row := []string{
			m.Swatch.Label(),
			m.Swatch.Hex,
			strconv.FormatFloat(m.Distance, 'f', 2, 64),
		}
		for i, cell := range row {
			row[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		if _, err := bw.WriteString("\r\n" + strings.Join(row, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

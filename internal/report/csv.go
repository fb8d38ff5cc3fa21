package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKlolbullen/hashhound/internal/model"
)

var csvHeader = []string{"NT Hash", "Shared By (Count)", "User Accounts"}

// WriteCSV writes the report as CSV: a header row, then one row per group
// in report order. The member list is always complete; the display cap
// applies only to the console table. encoding/csv quotes the member field
// since it contains commas.
func WriteCSV(w io.Writer, rep *model.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, g := range rep.Groups {
		row := []string{g.Hash, strconv.Itoa(g.Count()), strings.Join(g.Members, ", ")}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates path and writes the CSV export to it.
func WriteCSVFile(path string, rep *model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, rep); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	return nil
}

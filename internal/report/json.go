package report

import (
	"encoding/json"
	"io"

	"github.com/MKlolbullen/hashhound/internal/model"
)

// WriteJSON emits the full report as indented JSON for pipelines that
// post-process findings. Like the CSV export, member lists are never
// truncated.
func WriteJSON(w io.Writer, rep *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

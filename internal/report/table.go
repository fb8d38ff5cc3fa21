package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/MKlolbullen/hashhound/internal/model"
)

// DefaultDisplayCap is how many member accounts the console table shows
// per group before collapsing the rest into a "+N more" suffix. Exports
// are never truncated.
const DefaultDisplayCap = 7

// WriteTable renders the report as a bordered console table, preceded by a
// one-line parse summary. A report with no groups prints an informational
// message instead of an empty table.
func WriteTable(w io.Writer, rep *model.Report, displayCap int) {
	if displayCap <= 0 {
		displayCap = DefaultDisplayCap
	}

	fmt.Fprintf(w, "Parsed %d records (%d malformed lines skipped), %d shared-password groups found.\n",
		rep.Stats.ParsedRecords, rep.Stats.MalformedLines, len(rep.Groups))

	if len(rep.Groups) == 0 {
		fmt.Fprintln(w, "No shared passwords detected. All accounts have unique NT hashes.")
		return
	}

	fmt.Fprintln(w, "\nAccounts sharing the same password (same NT hash detected):")
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NT Hash", "Shared By (Count)", "User Accounts"})
	table.SetAutoWrapText(false)
	for _, g := range rep.Groups {
		table.Append([]string{g.Hash, strconv.Itoa(g.Count()), truncateMembers(g.Members, displayCap)})
	}
	table.Render()
}

func truncateMembers(members []string, limit int) string {
	if len(members) <= limit {
		return strings.Join(members, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(members[:limit], ", "), len(members)-limit)
}

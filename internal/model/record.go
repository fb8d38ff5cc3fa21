package model

// Record is one parsed line of a secretsdump-style credential dump:
//
//   username:RID:LM_hash:NT_hash:::
//
// Only Username and NTHash matter for duplicate detection; RID and LMHash
// are carried through parsing untouched and dropped at grouping time. The
// LM hash is ignored by design (constant/empty on modern domains).
type Record struct {
	Username string `json:"username"`
	RID      string `json:"rid"`
	LMHash   string `json:"lm_hash"`

	// NTHash is treated as an opaque string. No length or charset
	// validation and no case normalization: hashes compare byte-for-byte,
	// so the tool also works on dumps with non-NTLM hash formats.
	NTHash string `json:"nt_hash"`
}

// HashGroup is a set of accounts sharing one NT hash. Members keep the
// order in which they first appeared in the dump.
type HashGroup struct {
	Hash    string   `json:"hash"`
	Members []string `json:"members"`
}

// Count returns the number of accounts in the group.
func (g *HashGroup) Count() int { return len(g.Members) }

// DumpStats summarizes one parse pass over a dump file.
type DumpStats struct {
	TotalLines     int `json:"total_lines"`
	ParsedRecords  int `json:"parsed_records"`
	MalformedLines int `json:"malformed_lines"`
}

// Report is the finalized analysis result. Groups hold only shared hashes
// (two or more members), sorted by descending member count and then by
// ascending hash string; renderers consume the slice as-is so every output
// format agrees on row order.
type Report struct {
	SourceFile string      `json:"source_file"`
	Stats      DumpStats   `json:"stats"`
	Groups     []HashGroup `json:"groups"`
}

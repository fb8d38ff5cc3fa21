package model

import "time"

// Credential is a dump record promoted into the credential store, scoped
// to an engagement so material from different customers never mixes.
type Credential struct {
	ID         string `json:"id"`
	Engagement string `json:"engagement"` // scope / tenant / forest / customer
	Account    string `json:"account"`
	NTHash     string `json:"nt_hash"`
	SourceFile string `json:"source_file,omitempty"` // dump the hash was imported from

	FirstSeen   time.Time `json:"first_seen"`
	LastUpdated time.Time `json:"last_updated"`
}

package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKlolbullen/hashhound/internal/model"
)

// Store persists Credential JSON files under:
//
//   <root>/credentials/<engagement>/<account>.json
//
// One file per account: re-importing a dump updates the account's record
// in place instead of accumulating duplicates.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

func sanitize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), string(os.PathSeparator), "_")
}

func (s *Store) engagementDir(eng string) string {
	safe := sanitize(eng)
	if safe == "" {
		safe = "default"
	}
	return filepath.Join(s.root, "credentials", safe)
}

func (s *Store) credFile(eng, account string) string {
	safe := sanitize(account)
	if safe == "" {
		safe = "unknown"
	}
	return filepath.Join(s.engagementDir(eng), safe+".json")
}

// Save writes a Credential to disk. If a record already exists for the
// account with the same NT hash, its ID and FirstSeen are preserved; a
// changed hash resets both (the account's password rotated).
func (s *Store) Save(c *model.Credential) error {
	if c == nil {
		return fmt.Errorf("credential is nil")
	}
	if strings.TrimSpace(c.Account) == "" {
		return fmt.Errorf("credential.account is required")
	}
	if strings.TrimSpace(c.Engagement) == "" {
		c.Engagement = "default"
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	c.LastUpdated = now
	c.FirstSeen = now
	if old, err := s.load(c.Engagement, c.Account); err == nil && old.NTHash == c.NTHash {
		c.ID = old.ID
		c.FirstSeen = old.FirstSeen
	}

	dir := s.engagementDir(c.Engagement)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(s.credFile(c.Engagement, c.Account))
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(c)
}

func (s *Store) load(eng, account string) (*model.Credential, error) {
	return s.loadPath(s.credFile(eng, account))
}

func (s *Store) loadPath(path string) (*model.Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c model.Credential
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ImportRecords saves every parsed dump record into the engagement's
// store and returns how many were written. sourceFile is recorded on each
// credential so a finding can be traced back to the dump it came from.
func (s *Store) ImportRecords(engagement, sourceFile string, recs []model.Record) (int, error) {
	saved := 0
	for _, r := range recs {
		c := &model.Credential{
			Engagement: engagement,
			Account:    r.Username,
			NTHash:     r.NTHash,
			SourceFile: sourceFile,
		}
		if err := s.Save(c); err != nil {
			return saved, fmt.Errorf("import %s: %w", r.Username, err)
		}
		saved++
	}
	return saved, nil
}

// List returns all credentials for an engagement. If engagement is empty,
// it uses "default".
func (s *Store) List(engagement string) ([]*model.Credential, error) {
	if strings.TrimSpace(engagement) == "" {
		engagement = "default"
	}
	dir := s.engagementDir(engagement)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*model.Credential{}, nil
		}
		return nil, err
	}

	out := make([]*model.Credential, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		c, err := s.loadPath(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

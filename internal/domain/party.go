package domain

import (
	"encoding/json"
	"fmt"
)

// Party is a transaction counterparty. The upstream provider serializes a
// party either as a bare account-identifier string or as a structured
// {name, account} record; both shapes round-trip through JSON unchanged.
type Party struct {
	Name      string
	AccountID string

	structured bool
}

// PlainParty builds a party from a bare account string.
func PlainParty(account string) Party {
	return Party{AccountID: account}
}

// StructuredParty builds a party from a name/account record.
func StructuredParty(name, account string) Party {
	return Party{Name: name, AccountID: account, structured: true}
}

// Structured reports whether the party arrived as a {name, account} record
// rather than a bare string.
func (p Party) Structured() bool {
	return p.structured
}

// Display renders the party for presentation: bare strings as-is, structured
// records as "<name> (<account>)" with empty substitutions for missing fields.
func (p Party) Display() string {
	if !p.structured {
		return p.AccountID
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.AccountID)
}

// Account resolves the party to its account identifier: the raw string for a
// bare party, the account field (possibly empty) for a structured one.
func (p Party) Account() string {
	return p.AccountID
}

type structuredParty struct {
	Name    string `json:"name,omitempty"`
	Account string `json:"account,omitempty"`
}

// UnmarshalJSON accepts both wire shapes.
func (p *Party) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*p = PlainParty(plain)
		return nil
	}

	var rec structuredParty
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("party must be a string or a {name, account} record: %w", err)
	}
	*p = StructuredParty(rec.Name, rec.Account)
	return nil
}

// MarshalJSON preserves the original wire shape.
func (p Party) MarshalJSON() ([]byte, error) {
	if !p.structured {
		return json.Marshal(p.AccountID)
	}
	return json.Marshal(structuredParty{Name: p.Name, Account: p.AccountID})
}

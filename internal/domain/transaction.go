package domain

// CurrentUserMarker is the sentinel the receiver account is compared against
// when classifying directionality. No resolved user identity is threaded into
// the dashboard, so in practice only the sender-equals-receiver branch of the
// incoming predicate fires.
const CurrentUserMarker = "CURRENT_USER"

// Transaction models a single transaction as served by the upstream provider.
// Transactions are never persisted here; they are decoded, displayed, and
// discarded.
type Transaction struct {
	ID        string  `json:"id"`
	Sender    Party   `json:"sender"`
	Receiver  Party   `json:"receiver"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Cause     string  `json:"cause"`
	CreatedAt string  `json:"createdAt"`
}

// Incoming classifies the transaction's directionality: incoming when the
// receiver resolves to the current-user marker, or when sender and receiver
// resolve to the same account. Everything else is outgoing.
func (t Transaction) Incoming() bool {
	receiver := t.Receiver.Account()
	return receiver == CurrentUserMarker || t.Sender.Account() == receiver
}

// ResultSet is the envelope the upstream provider wraps transaction lists in.
// Fields beyond data are relayed verbatim by the proxy and ignored here.
type ResultSet struct {
	Data []Transaction `json:"data"`
}

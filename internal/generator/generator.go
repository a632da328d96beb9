package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/mikiyas/txboard/internal/domain"
)

// Config drives the synthetic transaction generator.
type Config struct {
	NumAccounts     int
	NumTransactions int
	Seed            int64
}

// DefaultConfig returns baseline settings for local development.
func DefaultConfig() Config {
	return Config{
		NumAccounts:     25,
		NumTransactions: 120,
		Seed:            42,
	}
}

// Generator produces synthetic transactions shaped like the payment
// provider's payloads: parties arrive both as bare account strings and as
// structured records, and createdAt cycles through the provider's epoch and
// date-string encodings.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumAccounts <= 0 {
		cfg.NumAccounts = DefaultConfig().NumAccounts
	}
	if cfg.NumTransactions <= 0 {
		cfg.NumTransactions = DefaultConfig().NumTransactions
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

var firstNames = []string{"Abebe", "Almaz", "Bekele", "Chaltu", "Dawit", "Eleni", "Fikru", "Hana", "Kebede", "Liya", "Mekdes", "Nahom", "Selam", "Tewodros", "Yonas"}
var lastNames = []string{"Alemu", "Bekele", "Desta", "Girma", "Haile", "Kassa", "Lemma", "Mengistu", "Tadesse", "Wolde"}
var causes = []string{"rent", "salary", "groceries", "school fees", "utility bill", "loan repayment", "gift", "invoice settlement", "airtime top-up", "savings transfer"}

// Generate synthesises the configured number of transactions.
func (g *Generator) Generate() []domain.Transaction {
	accounts := make([]account, g.cfg.NumAccounts)
	for i := range accounts {
		accounts[i] = account{
			id:   fmt.Sprintf("ACC-%05d", i+1),
			name: g.randomFullName(),
		}
	}

	now := time.Now()
	txs := make([]domain.Transaction, g.cfg.NumTransactions)
	for i := range txs {
		sender := accounts[g.rand.Intn(len(accounts))]
		receiver := accounts[g.rand.Intn(len(accounts))]

		createdAt := now.Add(-time.Duration(g.rand.Intn(90*24)) * time.Hour)

		txs[i] = domain.Transaction{
			ID:        fmt.Sprintf("TX-%07d", i+1),
			Sender:    g.randomParty(sender),
			Receiver:  g.randomParty(receiver),
			Amount:    float64(g.rand.Intn(490000)+1000) / 100,
			Currency:  "ETB",
			Cause:     causes[g.rand.Intn(len(causes))],
			CreatedAt: g.randomCreatedAt(createdAt),
		}
	}
	return txs
}

type account struct {
	id   string
	name string
}

func (g *Generator) randomFullName() string {
	return firstNames[g.rand.Intn(len(firstNames))] + " " + lastNames[g.rand.Intn(len(lastNames))]
}

func (g *Generator) randomParty(acc account) domain.Party {
	if g.rand.Intn(2) == 0 {
		return domain.PlainParty(acc.id)
	}
	return domain.StructuredParty(acc.name, acc.id)
}

func (g *Generator) randomCreatedAt(ts time.Time) string {
	switch g.rand.Intn(4) {
	case 0:
		return strconv.FormatInt(ts.Unix(), 10)
	case 1:
		return strconv.FormatInt(ts.UnixMilli(), 10)
	case 2:
		return strconv.FormatInt(ts.UnixMicro(), 10)
	default:
		return ts.UTC().Format(time.RFC3339)
	}
}

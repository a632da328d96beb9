package dashboard

import (
	"time"

	"github.com/mikiyas/txboard/internal/domain"
)

// localTimeLayout mirrors a browser's default locale rendering, e.g.
// "11/14/2023, 10:13:20 PM".
const localTimeLayout = "1/2/2006, 3:04:05 PM"

// Row is one rendered table row.
type Row struct {
	ID        string
	Sender    string
	Receiver  string
	Amount    float64
	Currency  string
	Cause     string
	CreatedAt string
	Incoming  bool
}

// View is the template's root data.
type View struct {
	Rows      []Row
	Page      int
	Query     string
	Searching bool
	PrevPage  int
	NextPage  int
	HasPrev   bool
}

// buildView assembles the view model for one page load. Search results are
// unpaginated; the pagination controls always navigate the plain list.
func buildView(txs []domain.Transaction, page int, query string, loc *time.Location) View {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, Row{
			ID:        tx.ID,
			Sender:    tx.Sender.Display(),
			Receiver:  tx.Receiver.Display(),
			Amount:    tx.Amount,
			Currency:  tx.Currency,
			Cause:     tx.Cause,
			CreatedAt: formatCreatedAt(tx.CreatedAt, loc),
			Incoming:  tx.Incoming(),
		})
	}

	prev := page - 1
	if prev < 1 {
		prev = 1
	}

	return View{
		Rows:      rows,
		Page:      page,
		Query:     query,
		Searching: query != "",
		PrevPage:  prev,
		NextPage:  page + 1,
		HasPrev:   page > 1,
	}
}

// formatCreatedAt renders the provider timestamp in the viewer's local
// conventions, falling back to the raw value when it cannot be resolved.
func formatCreatedAt(raw string, loc *time.Location) string {
	ts, err := domain.ParseCreatedAt(raw)
	if err != nil {
		return raw
	}
	return ts.In(loc).Format(localTimeLayout)
}

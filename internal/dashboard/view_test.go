package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mikiyas/txboard/internal/domain"
)

func TestFormatCreatedAtNumericVariantsAgree(t *testing.T) {
	want := formatCreatedAt("1700000000000", time.UTC)

	assert.Equal(t, want, formatCreatedAt("1700000000", time.UTC))
	assert.Equal(t, want, formatCreatedAt("17000000000000", time.UTC))
}

func TestFormatCreatedAtFallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "not-a-date", formatCreatedAt("not-a-date", time.UTC))
}

func TestBuildViewPagination(t *testing.T) {
	first := buildView(nil, 1, "", time.UTC)
	assert.False(t, first.HasPrev)
	assert.Equal(t, 1, first.PrevPage)
	assert.Equal(t, 2, first.NextPage)

	later := buildView(nil, 5, "", time.UTC)
	assert.True(t, later.HasPrev)
	assert.Equal(t, 4, later.PrevPage)
	assert.Equal(t, 6, later.NextPage)
}

func TestBuildViewRows(t *testing.T) {
	txs := []domain.Transaction{
		{
			ID:        "TX-1",
			Sender:    domain.StructuredParty("Alice", "ACC1"),
			Receiver:  domain.PlainParty("ACC1"),
			Amount:    12.5,
			Currency:  "ETB",
			Cause:     "refund",
			CreatedAt: "1700000000",
		},
	}

	view := buildView(txs, 1, "", time.UTC)
	assert.Len(t, view.Rows, 1)

	row := view.Rows[0]
	assert.Equal(t, "Alice (ACC1)", row.Sender)
	assert.Equal(t, "ACC1", row.Receiver)
	assert.True(t, row.Incoming)
	assert.Equal(t, "11/14/2023, 10:13:20 PM", row.CreatedAt)
}

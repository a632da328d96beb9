package upstream

import (
	"context"
	"sync"
)

// MemoryClient is an in-memory implementation of the Client interface used for
// unit testing handler logic without a running provider.
type MemoryClient struct {
	mu          sync.Mutex
	findCalls   []string
	searchCalls []string
	findReplies []*Reply
	srchReplies []*Reply
	err         error
	pingErr     error
}

// NewMemoryClient instantiates the in-memory client with optional canned replies.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// WithError configures the client to return the provided error for subsequent calls.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithPingError forces Ping to return the supplied error.
func (m *MemoryClient) WithPingError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingErr = err
	return m
}

// PushFindReply appends a reply returned on the next FindByUser call.
func (m *MemoryClient) PushFindReply(r *Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findReplies = append(m.findReplies, r)
}

// PushSearchReply appends a reply returned on the next Search call.
func (m *MemoryClient) PushSearchReply(r *Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.srchReplies = append(m.srchReplies, r)
}

func (m *MemoryClient) FindByUser(_ context.Context, page string) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	m.findCalls = append(m.findCalls, page)

	if len(m.findReplies) == 0 {
		return &Reply{StatusCode: 200, Body: []byte(`{"data":[]}`)}, nil
	}
	r := m.findReplies[0]
	m.findReplies = m.findReplies[1:]
	return r, nil
}

func (m *MemoryClient) Search(_ context.Context, query string) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	m.searchCalls = append(m.searchCalls, query)

	if len(m.srchReplies) == 0 {
		return &Reply{StatusCode: 200, Body: []byte(`{"data":[]}`)}, nil
	}
	r := m.srchReplies[0]
	m.srchReplies = m.srchReplies[1:]
	return r, nil
}

func (m *MemoryClient) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pingErr
}

// FindCalls returns a snapshot of pages requested through FindByUser.
func (m *MemoryClient) FindCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.findCalls...)
}

// SearchCalls returns a snapshot of queries submitted through Search.
func (m *MemoryClient) SearchCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.searchCalls...)
}

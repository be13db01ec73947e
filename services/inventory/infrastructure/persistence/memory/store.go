// Package memory is an in-process implementation of the inventory
// repositories. It honours the same version check as the PostgreSQL ledger
// so that concurrency behaviour can be tested without a database.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

type balanceKey struct {
	item     uuid.UUID
	location uuid.UUID
}

// Store holds every inventory table behind one lock.
type Store struct {
	mu sync.RWMutex

	items     map[uuid.UUID]*models.Item
	barcodes  map[string]uuid.UUID
	locations map[uuid.UUID]*models.StorageLocation

	balances map[balanceKey]*models.Balance
	txns     []*models.Transaction
	txnByID  map[uuid.UUID]*models.Transaction
	idemKeys map[string]*models.Transaction

	requests       map[uuid.UUID]*models.PurchaseRequest
	requestSources map[uuid.UUID]uuid.UUID
	requestSeq     int64

	onCommit []func(*models.Transaction)
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		items:          make(map[uuid.UUID]*models.Item),
		barcodes:       make(map[string]uuid.UUID),
		locations:      make(map[uuid.UUID]*models.StorageLocation),
		balances:       make(map[balanceKey]*models.Balance),
		txnByID:        make(map[uuid.UUID]*models.Transaction),
		idemKeys:       make(map[string]*models.Transaction),
		requests:       make(map[uuid.UUID]*models.PurchaseRequest),
		requestSources: make(map[uuid.UUID]uuid.UUID),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// OnCommit registers fn to run after every committed transaction, outside
// the store lock. It stands in for the outbox in tests.
func (s *Store) OnCommit(fn func(*models.Transaction)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCommit = append(s.onCommit, fn)
}

func (s *Store) Items() *ItemRepository                       { return &ItemRepository{s: s} }
func (s *Store) Locations() *LocationRepository               { return &LocationRepository{s: s} }
func (s *Store) Ledger() *LedgerRepository                    { return &LedgerRepository{s: s} }
func (s *Store) PurchaseRequests() *PurchaseRequestRepository { return &PurchaseRequestRepository{s: s} }

// TransactionCount returns the length of the log.
func (s *Store) TransactionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txns)
}

func copyItem(i *models.Item) *models.Item {
	c := *i
	if i.Barcode != nil {
		b := *i.Barcode
		c.Barcode = &b
	}
	return &c
}

func copyLocation(l *models.StorageLocation) *models.StorageLocation {
	c := *l
	return &c
}

func copyTxn(t *models.Transaction) *models.Transaction {
	c := *t
	if t.Reference != nil {
		r := *t.Reference
		c.Reference = &r
	}
	return &c
}

func copyRequest(p *models.PurchaseRequest) *models.PurchaseRequest {
	c := *p
	return &c
}

// sortNewestFirst orders by creation time, then by log position, newest
// first. Entries committed in the same instant keep commit order.
func sortNewestFirst(txns []*models.Transaction, pos map[*models.Transaction]int) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].CreatedAt.After(txns[j].CreatedAt)
		}
		return pos[txns[i]] > pos[txns[j]]
	})
}

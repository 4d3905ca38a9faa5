// Package memory provides an in-memory implementation of the storage interfaces.
//
// A unit of work holds the store lock from the first read to the commit, so units
// are serializable. Writes are staged on the unit and only applied when the
// callback returns nil.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
)

// Store implements storage.Storage in memory.
type Store struct {
	mu           sync.Mutex
	wallets      map[string]models.Wallet
	transactions []models.Transaction
	claims       map[string]models.Claim
	records      map[string]models.AllocationRecord
	definitions  map[string]models.AllocationDefinition

	// The directory belongs to other subsystems and is readable inside a unit of work.
	dirMu        sync.RWMutex
	users        map[string]models.UserProfile
	recognitions map[string]struct{}

	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		wallets:      make(map[string]models.Wallet),
		claims:       make(map[string]models.Claim),
		records:      make(map[string]models.AllocationRecord),
		definitions:  make(map[string]models.AllocationDefinition),
		users:        make(map[string]models.UserProfile),
		recognitions: make(map[string]struct{}),
		Now:          time.Now,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// AddUser registers a user profile in the directory.
func (s *Store) AddUser(profile models.UserProfile) {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()
	s.users[profile.UserId] = profile
}

// AddRecognition registers a recognition id as existing.
func (s *Store) AddRecognition(recognitionID string) {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()
	s.recognitions[recognitionID] = struct{}{}
}

// Run executes fn as one serializable unit of work.
func (s *Store) Run(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &unit{
		store:   s,
		now:     s.Now().UTC(),
		wallets: make(map[string]models.Wallet),
		claims:  make(map[string]models.Claim),
		records: make(map[string]models.AllocationRecord),
	}
	if err := fn(t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	t.commit()
	return nil
}

// GetWallet retrieves a user's wallet.
func (s *Store) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wallets[userID]
	if !ok {
		return nil, fmt.Errorf("wallet for user ID %s: %w", userID, storage.ErrNotFound)
	}
	return &w, nil
}

// CreateWallet provisions a zero-balance wallet.
func (s *Store) CreateWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[userID]; ok {
		return nil, fmt.Errorf("wallet for user ID %s: %w", userID, storage.ErrWalletExists)
	}
	now := s.Now().UTC()
	w := models.Wallet{UserId: userID, Version: 1, CreatedAt: now, UpdatedAt: now}
	s.wallets[userID] = w
	return &w, nil
}

// ListWallets returns all wallets ordered by user ID.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := make([]models.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].UserId < wallets[j].UserId })
	return wallets, nil
}

// ListTransactionsByUserID returns a user's ledger entries, newest first.
func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Transaction
	for i := len(s.transactions) - 1; i >= 0; i-- {
		if s.transactions[i].UserId == userID {
			out = append(out, s.transactions[i])
		}
	}
	return out, nil
}

// ListTransactionsByClaimID returns the ledger entries of a claim in write order.
func (s *Store) ListTransactionsByClaimID(ctx context.Context, claimID string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Transaction
	for _, tx := range s.transactions {
		if tx.ClaimId == claimID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// GetClaim retrieves a claim by its ID.
func (s *Store) GetClaim(ctx context.Context, claimID string) (*models.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.claims[claimID]
	if !ok {
		return nil, fmt.Errorf("claim %s: %w", claimID, storage.ErrNotFound)
	}
	return copyClaim(c), nil
}

// ListClaims returns every claim matching the query.
func (s *Store) ListClaims(ctx context.Context, query storage.ClaimQuery) ([]models.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Claim
	for _, c := range s.claims {
		if query.SenderID != "" && c.SenderId != query.SenderID {
			continue
		}
		if query.Status != "" && c.Status != query.Status {
			continue
		}
		out = append(out, *copyClaim(c))
	}
	return out, nil
}

// GetAllocationDefinition retrieves a definition by ID.
func (s *Store) GetAllocationDefinition(ctx context.Context, id string) (*models.AllocationDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.definitions[id]
	if !ok {
		return nil, fmt.Errorf("allocation definition %s: %w", id, storage.ErrNotFound)
	}
	return &def, nil
}

// PutAllocationDefinition creates or replaces a definition.
func (s *Store) PutAllocationDefinition(ctx context.Context, def *models.AllocationDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.definitions[def.Id] = *def
	return nil
}

// ListAllocationDefinitions returns definitions ordered by ID.
func (s *Store) ListAllocationDefinitions(ctx context.Context, activeOnly bool) ([]models.AllocationDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.AllocationDefinition
	for _, def := range s.definitions {
		if activeOnly && !def.Active {
			continue
		}
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

// GetSuccessfulAllocation returns the success record for a fence, or nil.
func (s *Store) GetSuccessfulAllocation(ctx context.Context, fence string) (*models.AllocationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[fence]
	if !ok || r.Status != models.AllocationSuccess {
		return nil, nil
	}
	return &r, nil
}

// PutAllocationRecord writes a record outside a unit of work.
func (s *Store) PutAllocationRecord(ctx context.Context, record *models.AllocationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[record.Id]; ok {
		return fmt.Errorf("allocation record %s: %w", record.Id, storage.ErrAllocationConflict)
	}
	s.records[record.Id] = *record
	return nil
}

// ListAllocationRecords returns a definition's records, newest first.
func (s *Store) ListAllocationRecords(ctx context.Context, definitionID string) ([]models.AllocationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.AllocationRecord
	for _, r := range s.records {
		if r.DefinitionId == definitionID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// FindUser returns the profile of a user, or nil when unknown.
func (s *Store) FindUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()

	p, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// RecognitionExists reports whether a recognition was registered.
func (s *Store) RecognitionExists(ctx context.Context, recognitionID string) (bool, error) {
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()

	_, ok := s.recognitions[recognitionID]
	return ok, nil
}

func copyClaim(c models.Claim) *models.Claim {
	c.Receivers = append([]models.ClaimReceiver(nil), c.Receivers...)
	return &c
}

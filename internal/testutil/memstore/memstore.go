// Package memstore is an in-memory persistence.UnitOfWork for use case tests.
// Rows are stored as copies, Within rolls back every write of a failed
// transaction, and GetForUpdate takes no lock, so lost updates show up unless
// callers serialize themselves.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
)

type txKey struct{}

type journal struct {
	undo []func()
}

// Store holds every table in memory
type Store struct {
	mu sync.Mutex

	accounts      []*entity.Account
	adViews       []*entity.AdViewRecord
	games         []*entity.Game
	sessions      []*entity.GameSession
	transactions  []*entity.StoreTransaction
	tiers         []*entity.StoreTier
	promotions    []*entity.VideoPromotion
	notifications []*entity.Notification

	failures map[string]error
}

var _ persistence.UnitOfWork = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{failures: make(map[string]error)}
}

// FailOn makes the next call of op (for example "StoreTransactions.Create") return err
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) injected(op string) error {
	if err, ok := s.failures[op]; ok {
		delete(s.failures, op)
		return err
	}
	return nil
}

// record registers an undo step when ctx carries a transaction. Callers hold s.mu.
func (s *Store) record(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(txKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
	}
}

// Begin implements persistence.UnitOfWork
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, txKey{}, &journal{}), nil
}

// Commit implements persistence.UnitOfWork
func (s *Store) Commit(ctx context.Context) error {
	if _, ok := ctx.Value(txKey{}).(*journal); !ok {
		return errs.ErrInternalServer
	}
	return nil
}

// Rollback implements persistence.UnitOfWork
func (s *Store) Rollback(ctx context.Context) error {
	j, ok := ctx.Value(txKey{}).(*journal)
	if !ok {
		return errs.ErrInternalServer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
	return nil
}

// Within implements persistence.UnitOfWork
func (s *Store) Within(ctx context.Context, fn func(txCtx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	txCtx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		_ = s.Rollback(txCtx)
		return err
	}
	return s.Commit(txCtx)
}

// GetAccountRepository implements persistence.UnitOfWork
func (s *Store) GetAccountRepository(context.Context) persistence.AccountRepository {
	return &accountRepo{s}
}

// GetAdViewRepository implements persistence.UnitOfWork
func (s *Store) GetAdViewRepository(context.Context) persistence.AdViewRepository {
	return &adViewRepo{s}
}

// GetGameRepository implements persistence.UnitOfWork
func (s *Store) GetGameRepository(context.Context) persistence.GameRepository {
	return &gameRepo{s}
}

// GetGameSessionRepository implements persistence.UnitOfWork
func (s *Store) GetGameSessionRepository(context.Context) persistence.GameSessionRepository {
	return &sessionRepo{s}
}

// GetStoreTransactionRepository implements persistence.UnitOfWork
func (s *Store) GetStoreTransactionRepository(context.Context) persistence.StoreTransactionRepository {
	return &transactionRepo{s}
}

// GetStoreTierRepository implements persistence.UnitOfWork
func (s *Store) GetStoreTierRepository(context.Context) persistence.StoreTierRepository {
	return &tierRepo{s}
}

// GetPromotionRepository implements persistence.UnitOfWork
func (s *Store) GetPromotionRepository(context.Context) persistence.PromotionRepository {
	return &promotionRepo{s}
}

// GetNotificationRepository implements persistence.UnitOfWork
func (s *Store) GetNotificationRepository(context.Context) persistence.NotificationRepository {
	return &notificationRepo{s}
}

// Seed inserts an account with the given balances outside any transaction
func (s *Store) Seed(account *entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *account
	s.accounts = append(s.accounts, &c)
}

// Account returns the stored copy of an account, or nil
func (s *Store) Account(id string) *entity.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.accounts, func(a *entity.Account) bool { return a.ID == id }); i >= 0 {
		c := *s.accounts[i]
		return &c
	}
	return nil
}

// Counts reports how many rows each ledger table holds
func (s *Store) Counts() (adViews, transactions, promotions, notifications int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.adViews), len(s.transactions), len(s.promotions), len(s.notifications)
}

func indexOf[T any](rows []*T, match func(*T) bool) int {
	return slices.IndexFunc(rows, match)
}

// insert appends a copy of row and records its removal
func insert[T any](s *Store, ctx context.Context, table *[]*T, row *T) {
	c := *row
	*table = append(*table, &c)
	s.record(ctx, func() {
		*table = slices.DeleteFunc(*table, func(r *T) bool { return r == &c })
	})
}

// replace overwrites the row at i with a copy of row and records the old value
func replace[T any](s *Store, ctx context.Context, table []*T, i int, row *T) {
	prev := *table[i]
	target := table[i]
	*target = *row
	s.record(ctx, func() { *target = prev })
}

// newestFirst returns copies ordered by created time descending, later inserts first on ties
func newestFirst[T any](rows []*T, keep func(*T) bool, created func(*T) int64) []*T {
	out := make([]*T, 0)
	for i := len(rows) - 1; i >= 0; i-- {
		if keep(rows[i]) {
			c := *rows[i]
			out = append(out, &c)
		}
	}
	slices.SortStableFunc(out, func(a, b *T) int {
		ca, cb := created(a), created(b)
		switch {
		case ca > cb:
			return -1
		case ca < cb:
			return 1
		}
		return 0
	})
	return out
}

type accountRepo struct{ s *Store }

func (r *accountRepo) find(id string) int {
	return indexOf(r.s.accounts, func(a *entity.Account) bool { return a.ID == id })
}

func (r *accountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("Accounts.GetByID"); err != nil {
		return nil, err
	}
	i := r.find(id)
	if i < 0 {
		return nil, errs.ErrAccountNotFound
	}
	c := *r.s.accounts[i]
	return &c, nil
}

func (r *accountRepo) GetByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.accounts, func(a *entity.Account) bool { return strings.EqualFold(a.Username, username) })
	if i < 0 {
		return nil, errs.ErrAccountNotFound
	}
	c := *r.s.accounts[i]
	return &c, nil
}

func (r *accountRepo) GetForUpdate(ctx context.Context, id string) (*entity.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *accountRepo) Create(ctx context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("Accounts.Create"); err != nil {
		return err
	}
	if indexOf(r.s.accounts, func(a *entity.Account) bool { return strings.EqualFold(a.Username, account.Username) }) >= 0 {
		return errs.ErrDuplicateUsername
	}
	insert(r.s, ctx, &r.s.accounts, account)
	return nil
}

func (r *accountRepo) Update(ctx context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("Accounts.Update"); err != nil {
		return err
	}
	i := r.find(account.ID)
	if i < 0 {
		return errs.ErrAccountNotFound
	}
	replace(r.s, ctx, r.s.accounts, i, account)
	return nil
}

func (r *accountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return indexOf(r.s.accounts, func(a *entity.Account) bool { return strings.EqualFold(a.Username, username) }) >= 0, nil
}

type adViewRepo struct{ s *Store }

func (r *adViewRepo) Create(ctx context.Context, record *entity.AdViewRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("AdViews.Create"); err != nil {
		return err
	}
	insert(r.s, ctx, &r.s.adViews, record)
	return nil
}

func (r *adViewRepo) ListByAccount(_ context.Context, accountID string) ([]*entity.AdViewRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.adViews,
		func(v *entity.AdViewRecord) bool { return v.AccountID == accountID },
		func(v *entity.AdViewRecord) int64 { return v.CreatedAt.UnixNano() }), nil
}

func (r *adViewRepo) Stats(context.Context) (*entity.AdViewStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stats := &entity.AdViewStats{}
	for _, v := range r.s.adViews {
		stats.Total++
		stats.TotalValue += v.AdValue
		stats.UserEarnings += v.UserEarned
		stats.PlatformEarnings += v.PlatformEarned
	}
	return stats, nil
}

type gameRepo struct{ s *Store }

func (r *gameRepo) List(_ context.Context, activeOnly bool) ([]*entity.Game, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Game, 0, len(r.s.games))
	for _, g := range r.s.games {
		if activeOnly && !g.IsActive {
			continue
		}
		c := *g
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *entity.Game) int { return strings.Compare(a.Title, b.Title) })
	return out, nil
}

func (r *gameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.games, func(g *entity.Game) bool { return g.ID == id })
	if i < 0 {
		return nil, errs.ErrGameNotFound
	}
	c := *r.s.games[i]
	return &c, nil
}

func (r *gameRepo) Create(ctx context.Context, game *entity.Game) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	insert(r.s, ctx, &r.s.games, game)
	return nil
}

func (r *gameRepo) Update(ctx context.Context, game *entity.Game) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.games, func(g *entity.Game) bool { return g.ID == game.ID })
	if i < 0 {
		return errs.ErrGameNotFound
	}
	replace(r.s, ctx, r.s.games, i, game)
	return nil
}

type sessionRepo struct{ s *Store }

func (r *sessionRepo) find(accountID, gameID string) int {
	return indexOf(r.s.sessions, func(gs *entity.GameSession) bool {
		return gs.AccountID == accountID && gs.GameID == gameID
	})
}

func (r *sessionRepo) Find(_ context.Context, accountID, gameID string) (*entity.GameSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(accountID, gameID)
	if i < 0 {
		return nil, errs.ErrNotFound
	}
	c := *r.s.sessions[i]
	return &c, nil
}

func (r *sessionRepo) Create(ctx context.Context, session *entity.GameSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.find(session.AccountID, session.GameID) >= 0 {
		return errs.ErrDuplicateKey
	}
	insert(r.s, ctx, &r.s.sessions, session)
	return nil
}

func (r *sessionRepo) Update(ctx context.Context, session *entity.GameSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(session.AccountID, session.GameID)
	if i < 0 {
		return errs.ErrNotFound
	}
	replace(r.s, ctx, r.s.sessions, i, session)
	return nil
}

type transactionRepo struct{ s *Store }

func (r *transactionRepo) find(id string) int {
	return indexOf(r.s.transactions, func(t *entity.StoreTransaction) bool { return t.ID == id })
}

func (r *transactionRepo) Create(ctx context.Context, txn *entity.StoreTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("StoreTransactions.Create"); err != nil {
		return err
	}
	insert(r.s, ctx, &r.s.transactions, txn)
	return nil
}

func (r *transactionRepo) GetByID(_ context.Context, id string) (*entity.StoreTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return nil, errs.ErrTransactionNotFound
	}
	c := *r.s.transactions[i]
	return &c, nil
}

func (r *transactionRepo) GetForUpdate(ctx context.Context, id string) (*entity.StoreTransaction, error) {
	return r.GetByID(ctx, id)
}

func (r *transactionRepo) ListByAccount(_ context.Context, accountID string) ([]*entity.StoreTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.transactions,
		func(t *entity.StoreTransaction) bool { return t.AccountID == accountID },
		func(t *entity.StoreTransaction) int64 { return t.CreatedAt.UnixNano() }), nil
}

func (r *transactionRepo) ListByStatus(_ context.Context, status entity.TransactionStatus) ([]*entity.StoreTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.transactions,
		func(t *entity.StoreTransaction) bool { return t.Status == status },
		func(t *entity.StoreTransaction) int64 { return t.CreatedAt.UnixNano() }), nil
}

func (r *transactionRepo) UpdateStatus(ctx context.Context, txn *entity.StoreTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("StoreTransactions.UpdateStatus"); err != nil {
		return err
	}
	i := r.find(txn.ID)
	if i < 0 {
		return errs.ErrTransactionNotFound
	}
	updated := *r.s.transactions[i]
	updated.Status = txn.Status
	replace(r.s, ctx, r.s.transactions, i, &updated)
	return nil
}

type tierRepo struct{ s *Store }

func (r *tierRepo) List(_ context.Context, category *entity.TransactionType) ([]*entity.StoreTier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.StoreTier, 0)
	for _, t := range r.s.tiers {
		if !t.IsActive || (category != nil && t.Category != *category) {
			continue
		}
		c := *t
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *entity.StoreTier) int {
		if c := strings.Compare(string(a.Category), string(b.Category)); c != 0 {
			return c
		}
		return a.Tier - b.Tier
	})
	return out, nil
}

func (r *tierRepo) GetByID(_ context.Context, id string) (*entity.StoreTier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.tiers, func(t *entity.StoreTier) bool { return t.ID == id })
	if i < 0 {
		return nil, errs.ErrTierNotFound
	}
	c := *r.s.tiers[i]
	return &c, nil
}

func (r *tierRepo) Create(ctx context.Context, tier *entity.StoreTier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if indexOf(r.s.tiers, func(t *entity.StoreTier) bool { return t.Category == tier.Category && t.Tier == tier.Tier }) >= 0 {
		return errs.ErrDuplicateKey
	}
	insert(r.s, ctx, &r.s.tiers, tier)
	return nil
}

func (r *tierRepo) Update(ctx context.Context, tier *entity.StoreTier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.tiers, func(t *entity.StoreTier) bool { return t.ID == tier.ID })
	if i < 0 {
		return errs.ErrTierNotFound
	}
	replace(r.s, ctx, r.s.tiers, i, tier)
	return nil
}

type promotionRepo struct{ s *Store }

func (r *promotionRepo) find(id string) int {
	return indexOf(r.s.promotions, func(p *entity.VideoPromotion) bool { return p.ID == id })
}

func (r *promotionRepo) Create(ctx context.Context, promotion *entity.VideoPromotion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("Promotions.Create"); err != nil {
		return err
	}
	insert(r.s, ctx, &r.s.promotions, promotion)
	return nil
}

func (r *promotionRepo) GetForUpdate(_ context.Context, id string) (*entity.VideoPromotion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return nil, errs.ErrPromotionNotFound
	}
	c := *r.s.promotions[i]
	return &c, nil
}

func (r *promotionRepo) ListByAccount(_ context.Context, accountID string) ([]*entity.VideoPromotion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.promotions,
		func(p *entity.VideoPromotion) bool { return p.AccountID == accountID },
		func(p *entity.VideoPromotion) int64 { return p.CreatedAt.UnixNano() }), nil
}

func (r *promotionRepo) ListByStatus(_ context.Context, status entity.PromotionStatus) ([]*entity.VideoPromotion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.promotions,
		func(p *entity.VideoPromotion) bool { return p.Status == status },
		func(p *entity.VideoPromotion) int64 { return p.CreatedAt.UnixNano() }), nil
}

func (r *promotionRepo) UpdateStatus(ctx context.Context, promotion *entity.VideoPromotion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(promotion.ID)
	if i < 0 {
		return errs.ErrPromotionNotFound
	}
	updated := *r.s.promotions[i]
	updated.Status = promotion.Status
	updated.ApprovedAt = promotion.ApprovedAt
	replace(r.s, ctx, r.s.promotions, i, &updated)
	return nil
}

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("Notifications.Create"); err != nil {
		return err
	}
	insert(r.s, ctx, &r.s.notifications, notification)
	return nil
}

func (r *notificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.notifications, func(n *entity.Notification) bool { return n.ID == id })
	if i < 0 {
		return nil, errs.ErrNotificationNotFound
	}
	c := *r.s.notifications[i]
	return &c, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexOf(r.s.notifications, func(n *entity.Notification) bool { return n.ID == id })
	if i < 0 {
		return nil, errs.ErrNotificationNotFound
	}
	updated := *r.s.notifications[i]
	updated.IsRead = true
	replace(r.s, ctx, r.s.notifications, i, &updated)
	c := updated
	return &c, nil
}

func (r *notificationRepo) ListByAccount(_ context.Context, accountID string) ([]*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.notifications,
		func(n *entity.Notification) bool { return n.AccountID == accountID },
		func(n *entity.Notification) int64 { return n.CreatedAt.UnixNano() }), nil
}

// SequentialIDs is a core.IDGenerator producing prefix-1, prefix-2, ...
type SequentialIDs struct {
	prefix string
	next   atomic.Int64
}

// NewSequentialIDs creates an ID generator
func NewSequentialIDs(prefix string) *SequentialIDs {
	return &SequentialIDs{prefix: prefix}
}

// NewID implements core.IDGenerator
func (g *SequentialIDs) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}

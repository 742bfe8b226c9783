package ledger

import (
	"errors"
	"fmt"
	"sync"

	"assetledger/internal/models"
	"assetledger/internal/notify"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Roles gate every privileged operation.
const (
	RoleAdmin           = "ADMIN"
	RolePlatformManager = "PLATFORM_MANAGER"
	RoleFundManager     = "FUND_MANAGER"
	RoleEscrowOperator  = "ESCROW_OPERATOR"
)

// Pausable module names consulted by marketplace and revenue operations.
const (
	ModuleMarketplace = "Marketplace"
	ModuleRevenue     = "Revenue"
)

// Internal ledger accounts. The marketplace escrow holder keeps listed units
// on a balance row so the per-asset conservation invariant stays a plain sum;
// the custody account holds pulled settlement funds awaiting claims.
const (
	MarketplaceEscrow = "escrow:marketplace"
	CustodyAccount    = "custody:assetledger"
)

// Service is the accounting state machine. Every public operation serializes
// under the mutex and runs in a single transaction: it either commits fully
// or leaves no trace. All internal bookkeeping completes before settlement
// funds leave custody.
type Service struct {
	mu       sync.Mutex
	db       *gorm.DB
	token    SettlementToken
	notifier notify.Notifier
}

// New builds a service over the given database and settlement token, seeding
// the bootstrap admin. A nil notifier disables the notification stream.
func New(db *gorm.DB, token SettlementToken, notifier notify.Notifier, admin string) (*Service, error) {
	s := &Service{db: db, token: token, notifier: notifier}

	if admin != "" {
		grant := models.RoleGrant{Role: RoleAdmin, Account: admin}
		if err := db.Where(models.RoleGrant{Role: RoleAdmin, Account: admin}).
			FirstOrCreate(&grant).Error; err != nil {
			return nil, fmt.Errorf("seed admin: %w", err)
		}
	}

	return s, nil
}

// DB exposes the underlying handle for read-only queries by handlers and the
// stat worker.
func (s *Service) DB() *gorm.DB {
	return s.db
}

// Token exposes the settlement collaborator for read-only balance queries.
func (s *Service) Token() SettlementToken {
	return s.token
}

// run executes one serialized, atomic state transition.
func (s *Service) run(fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Transaction(fn)
}

// emit publishes a notification after the transition committed and mirrors it
// to the log. Never called from inside a transaction.
func (s *Service) emit(event notify.Event) {
	log.WithFields(log.Fields{
		"action": event.ActionType,
		"actor":  event.Actor,
		"detail": event.Detail,
	}).Info("ledger event")

	if s.notifier != nil {
		s.notifier.Publish(event)
	}
}

// notifyEvent builds a stream event for a committed transition.
func notifyEvent(actionType, detail, actor string) notify.Event {
	return notify.NewEvent(actionType, detail, actor)
}

// audit appends to the append-only audit log inside the current transaction.
func audit(tx *gorm.DB, actionType, detail, actor string) error {
	entry := models.AuditEntry{ActionType: actionType, Detail: detail, Actor: actor}
	return tx.Create(&entry).Error
}

// hasRole reports role membership inside the current transaction.
func hasRole(tx *gorm.DB, role, account string) (bool, error) {
	var count int64
	err := tx.Model(&models.RoleGrant{}).
		Where("role = ? AND account = ?", role, account).
		Count(&count).Error
	return count > 0, err
}

// requireRole fails with ErrUnauthorized unless the actor holds one of the
// given roles.
func requireRole(tx *gorm.DB, actor string, roles ...string) error {
	for _, role := range roles {
		ok, err := hasRole(tx, role, actor)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %s requires one of %v", ErrUnauthorized, actor, roles)
}

// requireAnyRole fails unless the actor holds at least one role of any kind
// (the "administrative capability" gate for audit logging).
func requireAnyRole(tx *gorm.DB, actor string) error {
	var count int64
	if err := tx.Model(&models.RoleGrant{}).Where("account = ?", actor).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s holds no role", ErrUnauthorized, actor)
	}
	return nil
}

// requireUnpaused short-circuits module-scoped operations while the
// governance kill switch is set.
func requireUnpaused(tx *gorm.DB, module string) error {
	var pause models.ModulePause
	err := tx.Where("module = ?", module).First(&pause).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if pause.Paused {
		return fmt.Errorf("%w: %s", ErrModulePaused, module)
	}
	return nil
}

// params loads the governance-tunable settings row, creating defaults on
// first use.
func params(tx *gorm.DB) (models.LedgerParams, error) {
	p := models.LedgerParams{MaxSellPercent: 100, ProposalSignerThreshold: 1}
	err := tx.FirstOrCreate(&p, models.LedgerParams{ID: 1}).Error
	return p, err
}

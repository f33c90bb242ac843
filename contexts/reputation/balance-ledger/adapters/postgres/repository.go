package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/balance-ledger/domain/entities"
	"chainreputation/contexts/reputation/balance-ledger/ports"
	sharedevents "chainreputation/internal/shared/events"
	"chainreputation/internal/shared/outbox"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type txContextKey struct{}

// conn returns the transaction carried by ctx when one is open, so every
// repository call made inside InTransaction joins the same commit.
func (r *Repository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *Repository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

func (r *Repository) Credit(ctx context.Context, account, issuer, tokenName string, amount uint64) (uint64, error) {
	var balance uint64
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		row := balanceModel{
			Account:   account,
			Issuer:    issuer,
			TokenName: tokenName,
			Amount:    amount,
			UpdatedAt: time.Now().UTC(),
		}
		create := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account"}, {Name: "issuer"}, {Name: "token_name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"amount":     gorm.Expr("balances.amount + ?", amount),
				"updated_at": row.UpdatedAt,
			}),
		}).Create(&row)
		if create.Error != nil {
			return create.Error
		}
		return tx.Model(&balanceModel{}).
			Select("amount").
			Where("account = ? AND issuer = ? AND token_name = ?", account, issuer, tokenName).
			Scan(&balance).
			Error
	})
	if err != nil {
		return 0, r.logError("ledger_repo_credit_failed", err, "token_name", tokenName, "issuer", issuer)
	}
	return balance, nil
}

func (r *Repository) Debit(ctx context.Context, account, issuer, tokenName string, amount uint64) (uint64, uint64, error) {
	var applied, remaining uint64
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var row balanceModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account = ? AND issuer = ? AND token_name = ?", account, issuer, tokenName).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Nothing held under this issuer; the burn clamps to zero.
				applied, remaining = 0, 0
				return nil
			}
			return err
		}

		current := entities.Balance{Account: account, Issuer: issuer, TokenName: tokenName, Amount: row.Amount}
		applied = current.ClampDebit(amount)
		remaining = row.Amount - applied
		return tx.Model(&balanceModel{}).
			Where("account = ? AND issuer = ? AND token_name = ?", account, issuer, tokenName).
			Updates(map[string]any{
				"amount":     remaining,
				"updated_at": time.Now().UTC(),
			}).
			Error
	})
	if err != nil {
		return 0, 0, r.logError("ledger_repo_debit_failed", err, "token_name", tokenName, "issuer", issuer)
	}
	return applied, remaining, nil
}

func (r *Repository) Balance(ctx context.Context, account, issuer, tokenName string) (uint64, error) {
	var row balanceModel
	err := r.conn(ctx).
		Where("account = ? AND issuer = ? AND token_name = ?", account, issuer, tokenName).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, r.logError("ledger_repo_balance_failed", err, "token_name", tokenName, "issuer", issuer)
	}
	return row.Amount, nil
}

func (r *Repository) AccountBalances(ctx context.Context, account, tokenName string) ([]entities.Balance, error) {
	var rows []balanceModel
	err := r.conn(ctx).
		Where("account = ? AND token_name = ?", account, tokenName).
		Order("created_at asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("ledger_repo_account_balances_failed", err, "token_name", tokenName)
	}

	balances := make([]entities.Balance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, entities.Balance{
			Account:   row.Account,
			Issuer:    row.Issuer,
			TokenName: row.TokenName,
			Amount:    row.Amount,
		})
	}
	return balances, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	err := r.conn(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at asc").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("ledger_repo_outbox_list_failed", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, ports.OutboxMessage{
			OutboxID:  row.ID,
			EventType: row.EventType,
			Payload:   row.Payload,
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, at time.Time) error {
	err := r.conn(ctx).
		Model(&outboxModel{}).
		Where("id = ?", outboxID).
		Updates(map[string]any{
			"status":       outbox.StatusPublished,
			"published_at": at,
		}).
		Error
	if err != nil {
		return r.logError("ledger_repo_outbox_mark_failed", err, "outbox_id", outboxID)
	}
	return nil
}

// Publish satisfies the events sink: each audit envelope becomes a pending
// outbox row that the worker relay later hands to the bus. Services call it
// inside InTransaction, so the row lands in the same commit as the balance
// write it describes.
func (r *Repository) Publish(ctx context.Context, event sharedevents.Envelope) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	row := outboxModel{
		ID:        event.EventID,
		EventType: event.EventType,
		Payload:   payload,
		Status:    outbox.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.conn(ctx).Create(&row).Error; err != nil {
		return r.logError("ledger_repo_outbox_append_failed", err, "event_type", event.EventType)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := append([]any{
		"event", event,
		"module", "reputation/balance-ledger",
		"layer", "adapter",
		"error", err.Error(),
	}, attrs...)
	r.logger.Error("ledger postgres operation failed", fields...)
	return err
}

type balanceModel struct {
	Account   string    `gorm:"column:account;primaryKey"`
	Issuer    string    `gorm:"column:issuer;primaryKey"`
	TokenName string    `gorm:"column:token_name;primaryKey"`
	Amount    uint64    `gorm:"column:amount"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (balanceModel) TableName() string {
	return "balances"
}

type outboxModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	RetryCount  int        `gorm:"column:retry_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "ledger_outbox"
}

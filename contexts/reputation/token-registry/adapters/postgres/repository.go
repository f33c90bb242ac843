package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/token-registry/domain/entities"
	domainerrors "chainreputation/contexts/reputation/token-registry/domain/errors"
	"chainreputation/contexts/reputation/token-registry/ports"
	sharedevents "chainreputation/internal/shared/events"
	"chainreputation/internal/shared/outbox"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
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

func (r *Repository) GetToken(ctx context.Context, name string) (entities.Token, bool, error) {
	var row tokenModel
	err := r.conn(ctx).
		Where("name = ?", name).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Token{}, false, nil
		}
		return entities.Token{}, false, r.logError("registry_repo_get_token_failed", err, "token_name", name)
	}

	var oracleRows []tokenOracleModel
	err = r.conn(ctx).
		Where("token_name = ?", name).
		Order("position asc").
		Find(&oracleRows).
		Error
	if err != nil {
		return entities.Token{}, false, r.logError("registry_repo_get_oracles_failed", err, "token_name", name)
	}

	oracles := make([]string, 0, len(oracleRows))
	for _, oracleRow := range oracleRows {
		oracles = append(oracles, oracleRow.Oracle)
	}
	return row.toEntity(oracles), true, nil
}

// CreateToken is a plain insert: the unique index on tokens.name is the
// arbiter when two creates race, so the loser surfaces the name-in-use error
// instead of silently taking over the row.
func (r *Repository) CreateToken(ctx context.Context, token entities.Token) error {
	now := time.Now().UTC()
	row := tokenModelFromEntity(token, now)

	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrNameInUse
			}
			return err
		}
		return writeOracleRows(tx, token)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNameInUse) {
			return err
		}
		return r.logError("registry_repo_create_token_failed", err, "token_name", token.Name)
	}
	return nil
}

func (r *Repository) SaveToken(ctx context.Context, token entities.Token) error {
	now := time.Now().UTC()

	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&tokenModel{}).
			Where("name = ?", token.Name).
			Updates(map[string]any{
				"cid":        token.CID,
				"state":      string(token.State),
				"owner":      token.Owner,
				"updated_at": now,
			})
		if update.Error != nil {
			return update.Error
		}
		return writeOracleRows(tx, token)
	})
	if err != nil {
		return r.logError("registry_repo_save_token_failed", err, "token_name", token.Name)
	}
	return nil
}

func writeOracleRows(tx *gorm.DB, token entities.Token) error {
	if err := tx.Where("token_name = ?", token.Name).Delete(&tokenOracleModel{}).Error; err != nil {
		return err
	}
	if len(token.Oracles) == 0 {
		return nil
	}

	oracleRows := make([]tokenOracleModel, 0, len(token.Oracles))
	for position, oracle := range token.Oracles {
		oracleRows = append(oracleRows, tokenOracleModel{
			TokenName: token.Name,
			Position:  position,
			Oracle:    oracle,
		})
	}
	return tx.Create(&oracleRows).Error
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
		return nil, r.logError("registry_repo_outbox_list_failed", err)
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
		return r.logError("registry_repo_outbox_mark_failed", err, "outbox_id", outboxID)
	}
	return nil
}

// Publish satisfies the events sink: each audit envelope becomes a pending
// outbox row that the worker relay later hands to the bus. Services call it
// inside InTransaction, so the row lands in the same commit as the state it
// describes.
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
		return r.logError("registry_repo_outbox_append_failed", err, "event_type", event.EventType)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := append([]any{
		"event", event,
		"module", "reputation/token-registry",
		"layer", "adapter",
		"error", err.Error(),
	}, attrs...)
	r.logger.Error("registry postgres operation failed", fields...)
	return err
}

type tokenModel struct {
	Name      string    `gorm:"column:name;primaryKey"`
	CID       string    `gorm:"column:cid"`
	State     string    `gorm:"column:state"`
	Owner     string    `gorm:"column:owner"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (tokenModel) TableName() string {
	return "tokens"
}

func (m tokenModel) toEntity(oracles []string) entities.Token {
	return entities.Token{
		Name:    m.Name,
		CID:     m.CID,
		State:   entities.TokenState(m.State),
		Owner:   m.Owner,
		Oracles: oracles,
	}
}

func tokenModelFromEntity(token entities.Token, now time.Time) tokenModel {
	return tokenModel{
		Name:      token.Name,
		CID:       token.CID,
		State:     string(token.State),
		Owner:     token.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type tokenOracleModel struct {
	TokenName string `gorm:"column:token_name;primaryKey"`
	Position  int    `gorm:"column:position;primaryKey"`
	Oracle    string `gorm:"column:oracle"`
}

func (tokenOracleModel) TableName() string {
	return "token_oracles"
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
	return "registry_outbox"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

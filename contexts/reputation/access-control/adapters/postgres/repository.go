package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/access-control/domain/entities"

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

func (r *Repository) GetAdmin(ctx context.Context, id string) (entities.Admin, bool, error) {
	var row adminModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Admin{}, false, nil
		}
		return entities.Admin{}, false, r.logError("access_repo_get_admin_failed", err, "admin", id)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SaveAdmin(ctx context.Context, admin entities.Admin) error {
	now := time.Now().UTC()
	row := adminModel{
		ID:             admin.ID,
		Authorized:     admin.Authorized,
		TotalRepIssued: admin.TotalRepIssued,
		TotalRepBurned: admin.TotalRepBurned,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"authorized":       row.Authorized,
			"total_rep_issued": row.TotalRepIssued,
			"total_rep_burned": row.TotalRepBurned,
			"updated_at":       row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("access_repo_save_admin_failed", err, "admin", admin.ID)
	}
	return nil
}

func (r *Repository) GetContract(ctx context.Context, id string) (entities.Contract, bool, error) {
	var row contractModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Contract{}, false, nil
		}
		return entities.Contract{}, false, r.logError("access_repo_get_contract_failed", err, "contract", id)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SaveContract(ctx context.Context, contract entities.Contract) error {
	now := time.Now().UTC()
	row := contractModel{
		ID:         contract.ID,
		Name:       contract.Name,
		Authorized: contract.Authorized,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       row.Name,
			"authorized": row.Authorized,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("access_repo_save_contract_failed", err, "contract", contract.ID)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := append([]any{
		"event", event,
		"module", "reputation/access-control",
		"layer", "adapter",
		"error", err.Error(),
	}, attrs...)
	r.logger.Error("access postgres operation failed", fields...)
	return err
}

type adminModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Authorized     bool      `gorm:"column:authorized"`
	TotalRepIssued uint64    `gorm:"column:total_rep_issued"`
	TotalRepBurned uint64    `gorm:"column:total_rep_burned"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (adminModel) TableName() string {
	return "admins"
}

func (m adminModel) toEntity() entities.Admin {
	return entities.Admin{
		ID:             m.ID,
		Authorized:     m.Authorized,
		TotalRepIssued: m.TotalRepIssued,
		TotalRepBurned: m.TotalRepBurned,
	}
}

type contractModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Authorized bool      `gorm:"column:authorized"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (contractModel) TableName() string {
	return "contracts"
}

func (m contractModel) toEntity() entities.Contract {
	return entities.Contract{
		ID:         m.ID,
		Name:       m.Name,
		Authorized: m.Authorized,
	}
}

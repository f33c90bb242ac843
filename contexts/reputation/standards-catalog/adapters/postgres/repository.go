package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/standards-catalog/domain/entities"

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

func (r *Repository) GetStandard(ctx context.Context, name string) (entities.Standard, bool, error) {
	var row standardModel
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Standard{}, false, nil
		}
		return entities.Standard{}, false, r.logError("catalog_repo_get_standard_failed", err, "standard_name", name)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SaveStandard(ctx context.Context, standard entities.Standard) error {
	now := time.Now().UTC()
	row := standardModelFromEntity(standard, now)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		create := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rep_amount": row.RepAmount,
				"destroyed":  row.Destroyed,
				"updated_at": row.UpdatedAt,
			}),
		}).Create(&row)
		if create.Error != nil {
			return create.Error
		}

		if standard.Destroyed {
			// Destroyed standards keep their slot in the name list; the
			// slot is blanked in place so positions stay stable.
			return tx.Model(&standardNameModel{}).
				Where("name = ?", standard.Name).
				Update("name", "").
				Error
		}

		var listed int64
		if err := tx.Model(&standardNameModel{}).
			Where("name = ?", standard.Name).
			Count(&listed).
			Error; err != nil {
			return err
		}
		if listed > 0 {
			return nil
		}

		var next int64
		if err := tx.Model(&standardNameModel{}).Count(&next).Error; err != nil {
			return err
		}
		return tx.Create(&standardNameModel{
			Position: int(next),
			Name:     standard.Name,
		}).Error
	})
	if err != nil {
		return r.logError("catalog_repo_save_standard_failed", err, "standard_name", standard.Name)
	}
	return nil
}

func (r *Repository) StandardNames(ctx context.Context) ([]string, error) {
	var rows []standardNameModel
	err := r.db.WithContext(ctx).
		Order("position asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("catalog_repo_list_names_failed", err)
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := append([]any{
		"event", event,
		"module", "reputation/standards-catalog",
		"layer", "adapter",
		"error", err.Error(),
	}, attrs...)
	r.logger.Error("catalog postgres operation failed", fields...)
	return err
}

type standardModel struct {
	Name      string    `gorm:"column:name;primaryKey"`
	RepAmount int64     `gorm:"column:rep_amount"`
	Destroyed bool      `gorm:"column:destroyed"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (standardModel) TableName() string {
	return "standards"
}

func (m standardModel) toEntity() entities.Standard {
	return entities.Standard{
		Name:      m.Name,
		RepAmount: m.RepAmount,
		Destroyed: m.Destroyed,
	}
}

func standardModelFromEntity(standard entities.Standard, now time.Time) standardModel {
	return standardModel{
		Name:      standard.Name,
		RepAmount: standard.RepAmount,
		Destroyed: standard.Destroyed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type standardNameModel struct {
	Position int    `gorm:"column:position;primaryKey"`
	Name     string `gorm:"column:name"`
}

func (standardNameModel) TableName() string {
	return "standard_names"
}

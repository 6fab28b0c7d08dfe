package postgres

import (
	"context"

	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// packRepository is the GORM implementation of repository.PackRepository.
type packRepository struct {
	db *gorm.DB
}

// NewPackRepository creates a pack repository bound to the given DB handle.
func NewPackRepository(db *gorm.DB) repository.PackRepository {
	return &packRepository{db: db}
}

// FindByID retrieves a pack with its ordered item list.
func (r *packRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ElectivePack, error) {
	var row model.PackModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find pack by id")
	}

	return packToEntity(&row), nil
}

// ListByGroup returns packs visible to a cohort group, optionally filtered by status.
func (r *packRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, statuses []entity.PackStatus) ([]*entity.ElectivePack, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("group_id = ?", groupID)
	query = applyPackStatusFilter(query, statuses)

	var rows []model.PackModel
	if err := query.Order("deadline ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list packs by group")
	}

	return packsToEntities(rows), nil
}

// ListAll returns every pack regardless of group, optionally filtered by status.
func (r *packRepository) ListAll(ctx context.Context, statuses []entity.PackStatus) ([]*entity.ElectivePack, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
	query = applyPackStatusFilter(query, statuses)

	var rows []model.PackModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list packs")
	}

	return packsToEntities(rows), nil
}

// Create persists a new pack and its item list in one write.
func (r *packRepository) Create(ctx context.Context, pack *entity.ElectivePack) error {
	row := packToModel(pack)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("pack references an unknown group or item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "create pack")
	}

	pack.CreatedAt = row.CreatedAt
	pack.UpdatedAt = row.UpdatedAt

	return nil
}

// Update modifies a pack's attributes and replaces its item list.
func (r *packRepository) Update(ctx context.Context, pack *entity.ElectivePack) error {
	row := packToModel(pack)

	result := r.db.WithContext(ctx).Model(&model.PackModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"title":          row.Title,
			"description":    row.Description,
			"deadline":       row.Deadline,
			"max_selections": row.MaxSelections,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "update pack")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackNotFound
	}

	// Replace the item list wholesale; callers only update draft packs.
	if err := r.db.WithContext(ctx).Delete(&model.PackItemModel{}, "pack_id = ?", row.ID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "clear pack items")
	}
	if len(row.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&row.Items).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "write pack items")
		}
	}

	return nil
}

// UpdateStatus changes only the pack status.
func (r *packRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PackStatus) error {
	result := r.db.WithContext(ctx).Model(&model.PackModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "update pack status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackNotFound
	}

	return nil
}

func applyPackStatusFilter(query *gorm.DB, statuses []entity.PackStatus) *gorm.DB {
	if len(statuses) == 0 {
		return query
	}

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	return query.Where("status IN ?", values)
}

func packToEntity(row *model.PackModel) *entity.ElectivePack {
	itemIDs := make([]uuid.UUID, 0, len(row.Items))
	for _, item := range row.Items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	return &entity.ElectivePack{
		ID:            row.ID,
		Type:          entity.PackType(row.Type),
		Title:         row.Title,
		Description:   row.Description,
		GroupID:       row.GroupID,
		Deadline:      row.Deadline,
		MaxSelections: row.MaxSelections,
		Status:        entity.PackStatus(row.Status),
		ItemIDs:       itemIDs,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func packsToEntities(rows []model.PackModel) []*entity.ElectivePack {
	packs := make([]*entity.ElectivePack, 0, len(rows))
	for i := range rows {
		packs = append(packs, packToEntity(&rows[i]))
	}

	return packs
}

func packToModel(pack *entity.ElectivePack) *model.PackModel {
	items := make([]model.PackItemModel, 0, len(pack.ItemIDs))
	for position, itemID := range pack.ItemIDs {
		items = append(items, model.PackItemModel{
			PackID:   pack.ID,
			ItemID:   itemID,
			Position: position,
		})
	}

	return &model.PackModel{
		ID:            pack.ID,
		Type:          string(pack.Type),
		Title:         pack.Title,
		Description:   pack.Description,
		GroupID:       pack.GroupID,
		Deadline:      pack.Deadline,
		MaxSelections: pack.MaxSelections,
		Status:        string(pack.Status),
		CreatedBy:     pack.CreatedBy,
		Items:         items,
	}
}

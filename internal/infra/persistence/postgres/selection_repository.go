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

// selectionRepository is the GORM implementation of repository.SelectionRepository.
type selectionRepository struct {
	db *gorm.DB
}

// NewSelectionRepository creates a selection repository bound to the given DB handle.
func NewSelectionRepository(db *gorm.DB) repository.SelectionRepository {
	return &selectionRepository{db: db}
}

func withOrderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID retrieves a selection with its ordered item list.
func (r *selectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Selection, error) {
	var row model.SelectionModel
	err := r.db.WithContext(ctx).
		Preload("Items", withOrderedItems).
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSelectionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find selection by id")
	}

	return selectionToEntity(&row), nil
}

// FindByStudentAndPack retrieves the student's selection for a pack, if any.
func (r *selectionRepository) FindByStudentAndPack(ctx context.Context, studentID, packID uuid.UUID) (*entity.Selection, error) {
	var row model.SelectionModel
	err := r.db.WithContext(ctx).
		Preload("Items", withOrderedItems).
		First(&row, "student_id = ? AND pack_id = ?", studentID, packID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSelectionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find selection by student and pack")
	}

	return selectionToEntity(&row), nil
}

// ListByStudent returns all selections made by a student, newest first.
func (r *selectionRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Selection, error) {
	var rows []model.SelectionModel
	err := r.db.WithContext(ctx).
		Preload("Items", withOrderedItems).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list selections by student")
	}

	return selectionsToEntities(rows), nil
}

// ListByPack returns all selections submitted for a pack, optionally filtered by status.
func (r *selectionRepository) ListByPack(ctx context.Context, packID uuid.UUID, statuses []entity.SelectionStatus) ([]*entity.Selection, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", withOrderedItems).
		Where("pack_id = ?", packID)
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		query = query.Where("status IN ?", values)
	}

	var rows []model.SelectionModel
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list selections by pack")
	}

	return selectionsToEntities(rows), nil
}

// ListPending returns every selection still awaiting a decision, oldest first.
func (r *selectionRepository) ListPending(ctx context.Context) ([]*entity.Selection, error) {
	var rows []model.SelectionModel
	err := r.db.WithContext(ctx).
		Preload("Items", withOrderedItems).
		Where("status = ?", string(entity.SelectionStatusPending)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list pending selections")
	}

	return selectionsToEntities(rows), nil
}

// Create persists a new selection with its ordered items.
func (r *selectionRepository) Create(ctx context.Context, selection *entity.Selection) error {
	row := selectionToModel(selection)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSelectionExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("selection references an unknown pack or item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "create selection")
	}

	selection.CreatedAt = row.CreatedAt
	selection.UpdatedAt = row.UpdatedAt

	return nil
}

// Update replaces a selection's items and decision fields.
func (r *selectionRepository) Update(ctx context.Context, selection *entity.Selection) error {
	row := selectionToModel(selection)

	result := r.db.WithContext(ctx).Model(&model.SelectionModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"status":     row.Status,
			"comment":    row.Comment,
			"decided_by": row.DecidedBy,
			"decided_at": row.DecidedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "update selection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSelectionNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&model.SelectionItemModel{}, "selection_id = ?", row.ID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "clear selection items")
	}
	if len(row.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&row.Items).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "write selection items")
		}
	}

	return nil
}

func selectionToEntity(row *model.SelectionModel) *entity.Selection {
	itemIDs := make([]uuid.UUID, 0, len(row.Items))
	for _, item := range row.Items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	return &entity.Selection{
		ID:        row.ID,
		StudentID: row.StudentID,
		PackID:    row.PackID,
		ItemIDs:   itemIDs,
		Status:    entity.SelectionStatus(row.Status),
		Comment:   row.Comment,
		DecidedBy: row.DecidedBy,
		DecidedAt: row.DecidedAt,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func selectionsToEntities(rows []model.SelectionModel) []*entity.Selection {
	selections := make([]*entity.Selection, 0, len(rows))
	for i := range rows {
		selections = append(selections, selectionToEntity(&rows[i]))
	}

	return selections
}

func selectionToModel(selection *entity.Selection) *model.SelectionModel {
	items := make([]model.SelectionItemModel, 0, len(selection.ItemIDs))
	for position, itemID := range selection.ItemIDs {
		items = append(items, model.SelectionItemModel{
			SelectionID: selection.ID,
			ItemID:      itemID,
			Position:    position,
		})
	}

	return &model.SelectionModel{
		ID:        selection.ID,
		StudentID: selection.StudentID,
		PackID:    selection.PackID,
		Status:    string(selection.Status),
		Comment:   selection.Comment,
		DecidedBy: selection.DecidedBy,
		DecidedAt: selection.DecidedAt,
		Items:     items,
	}
}

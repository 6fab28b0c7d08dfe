package impl

import (
	"context"
	"fmt"
	"log/slog"

	"epro/internal/cache"
	deliverycontext "epro/internal/delivery/context"
	"epro/internal/domain/entity"
	domainerrors "epro/internal/domain/errors"
	"epro/internal/domain/repository"
	"epro/internal/domain/service"
	"epro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// selectionService implements the SelectionUsecase interface.
type selectionService struct {
	txManager     repository.TransactionManager
	selectionRepo repository.SelectionRepository
	packRepo      repository.PackRepository
	profileRepo   repository.ProfileRepository
	loader        *cache.Loader
	mailer        service.Mailer
	clock         cache.Clock
	logger        *slog.Logger
}

// SelectionServiceParams holds dependencies for selectionService, injected by Fx.
type SelectionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	SelectionRepo repository.SelectionRepository
	PackRepo      repository.PackRepository
	ProfileRepo   repository.ProfileRepository
	Loader        *cache.Loader
	Mailer        service.Mailer
	Clock         cache.Clock
	Logger        *slog.Logger
}

// NewSelectionService is the constructor for selectionService.
func NewSelectionService(params SelectionServiceParams) usecase.SelectionUsecase {
	return &selectionService{
		txManager:     params.TxManager,
		selectionRepo: params.SelectionRepo,
		packRepo:      params.PackRepo,
		profileRepo:   params.ProfileRepo,
		loader:        params.Loader,
		mailer:        params.Mailer,
		clock:         params.Clock,
		logger:        params.Logger,
	}
}

func (srv *selectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records a student's ordered selection for an open pack.
// All validation happens before the first write, so a rejected submission
// leaves no partial state behind.
func (srv *selectionService) Submit(ctx context.Context, studentID uuid.UUID, input usecase.SubmitSelectionInput) (*entity.Selection, error) {
	srv.log(ctx).Debug("Starting selection submit", slog.Any("studentID", studentID), slog.Any("packID", input.PackID))

	pack, err := srv.packRepo.FindByID(ctx, input.PackID)
	if err != nil {
		if errors.Is(err, repository.ErrPackNotFound) {
			return nil, domainerrors.ErrPackNotFound.WrapMessage("submit rejected")
		}

		return nil, errors.Wrap(err, "failed to load pack for submit")
	}

	student, err := srv.profileRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load student for submit")
	}
	if student.GroupID == nil || *student.GroupID != pack.GroupID {
		srv.log(ctx).Warn("Submit for pack outside student's group", slog.Any("studentID", studentID), slog.Any("packID", pack.ID))

		return nil, domainerrors.ErrForbidden.WrapMessage("pack belongs to another group")
	}

	if !pack.IsOpenAt(srv.clock.Now()) {
		return nil, domainerrors.ErrPackNotOpen.WrapMessage("submit rejected")
	}

	if err := validateSelectionItems(pack, input.ItemIDs); err != nil {
		return nil, err
	}

	var created *entity.Selection
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		selectionRepo := repoFactory.SelectionRepo()

		_, err := selectionRepo.FindByStudentAndPack(ctx, studentID, pack.ID)
		if err == nil {
			return domainerrors.ErrConflict.WrapMessage("selection already submitted for this pack")
		}
		if !errors.Is(err, repository.ErrSelectionNotFound) {
			return errors.Wrap(err, "failed to check existing selection")
		}

		selection := &entity.Selection{
			ID:        uuid.New(),
			StudentID: studentID,
			PackID:    pack.ID,
			ItemIDs:   input.ItemIDs,
			Status:    entity.SelectionStatusPending,
		}
		if err := selectionRepo.Create(ctx, selection); err != nil {
			return errors.Wrap(err, "failed to create selection")
		}

		created = selection

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.loader.InvalidateNamespace(ctx, cache.NamespaceSelections)

	srv.log(ctx).Info("Selection submitted",
		slog.Any("selectionID", created.ID),
		slog.Any("packID", pack.ID),
		slog.Int("items", len(created.ItemIDs)))

	return created, nil
}

// validateSelectionItems checks the ordered item list against the pack's
// offering and limit. Order itself is never touched.
func validateSelectionItems(pack *entity.ElectivePack, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one item is required")
	}
	if pack.MaxSelections > 0 && len(itemIDs) > pack.MaxSelections {
		return domainerrors.ErrSelectionLimit.WrapMessage("submit rejected")
	}

	seen := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, itemID := range itemIDs {
		if _, dup := seen[itemID]; dup {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate item in selection")
		}
		seen[itemID] = struct{}{}

		if !pack.Offers(itemID) {
			return domainerrors.ErrValidationFailed.WrapMessage("item does not belong to this pack")
		}
	}

	return nil
}

// ListMine returns the student's own selections, cache-first.
func (srv *selectionService) ListMine(ctx context.Context, studentID uuid.UUID) ([]*entity.Selection, error) {
	return loadCached(ctx, srv.loader, cache.NamespaceSelections, "student:"+studentID.String(), func(ctx context.Context) ([]*entity.Selection, error) {
		return srv.selectionRepo.ListByStudent(ctx, studentID)
	})
}

// ListPending returns pending selections awaiting review. The review queue is
// always read fresh so a manager never decides from a stale list.
func (srv *selectionService) ListPending(ctx context.Context, managerID uuid.UUID) ([]*entity.Selection, error) {
	selections, err := srv.selectionRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending selections")
	}

	srv.log(ctx).Debug("Pending selections listed", slog.Any("managerID", managerID), slog.Int("count", len(selections)))

	return selections, nil
}

// ListByPack returns all selections for a pack.
func (srv *selectionService) ListByPack(ctx context.Context, packID uuid.UUID) ([]*entity.Selection, error) {
	selections, err := srv.selectionRepo.ListByPack(ctx, packID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list selections for pack")
	}

	return selections, nil
}

// Decide approves or rejects a pending selection.
func (srv *selectionService) Decide(ctx context.Context, reviewerID uuid.UUID, input usecase.DecideSelectionInput) (*entity.Selection, error) {
	next := entity.SelectionStatusRejected
	if input.Approve {
		next = entity.SelectionStatusApproved
	}

	var decided *entity.Selection
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		selectionRepo := repoFactory.SelectionRepo()

		selection, err := selectionRepo.FindByID(ctx, input.SelectionID)
		if err != nil {
			if errors.Is(err, repository.ErrSelectionNotFound) {
				return domainerrors.ErrSelectionNotFound.WrapMessage("decision rejected")
			}

			return errors.Wrap(err, "failed to load selection for decision")
		}

		if !selection.Decide(next, reviewerID, input.Comment, srv.clock.Now()) {
			return domainerrors.ErrSelectionDecided.WrapMessage("decision rejected")
		}

		if err := selectionRepo.Update(ctx, selection); err != nil {
			return errors.Wrap(err, "failed to store decision")
		}

		decided = selection

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.loader.InvalidateNamespace(ctx, cache.NamespaceSelections)

	srv.log(ctx).Info("Selection decided",
		slog.Any("selectionID", decided.ID),
		slog.Any("status", decided.Status),
		slog.Any("reviewerID", reviewerID))

	srv.notifyStudent(ctx, decided)

	return decided, nil
}

// notifyStudent mails the decision to the student in the background. Mail
// failures are logged and never fail the decision.
func (srv *selectionService) notifyStudent(ctx context.Context, selection *entity.Selection) {
	student, err := srv.profileRepo.FindByID(ctx, selection.StudentID)
	if err != nil {
		srv.log(ctx).Warn("Decision mail skipped, student lookup failed",
			slog.Any("selectionID", selection.ID), slog.Any("error", err))

		return
	}

	logger := srv.log(ctx)
	go func() {
		subject := fmt.Sprintf("Your elective selection was %s", selection.Status)
		body := fmt.Sprintf("Hello %s,\n\nYour selection has been %s.", student.FullName, selection.Status)
		if selection.Comment != "" {
			body += "\n\nReviewer comment: " + selection.Comment
		}

		if err := srv.mailer.Send(context.Background(), student.Email, subject, body); err != nil {
			logger.Warn("Decision mail failed", slog.Any("selectionID", selection.ID), slog.Any("error", err))
		}
	}()
}

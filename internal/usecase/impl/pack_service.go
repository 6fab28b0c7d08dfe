package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"epro/config"
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

// packService implements the PackUsecase interface.
type packService struct {
	txManager   repository.TransactionManager
	packRepo    repository.PackRepository
	profileRepo repository.ProfileRepository
	qrService   service.QRCodeService
	loader      *cache.Loader
	clock       cache.Clock
	baseURL     string
	logger      *slog.Logger
}

// PackServiceParams holds dependencies for packService, injected by Fx.
type PackServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PackRepo    repository.PackRepository
	ProfileRepo repository.ProfileRepository
	QRService   service.QRCodeService
	Loader      *cache.Loader
	Clock       cache.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPackService is the constructor for packService.
func NewPackService(params PackServiceParams) usecase.PackUsecase {
	baseURL := ""
	if params.Config != nil {
		baseURL = strings.TrimRight(params.Config.HTTP.BaseURL, "/")
	}

	return &packService{
		txManager:   params.TxManager,
		packRepo:    params.PackRepo,
		profileRepo: params.ProfileRepo,
		qrService:   params.QRService,
		loader:      params.Loader,
		clock:       params.Clock,
		baseURL:     baseURL,
		logger:      params.Logger,
	}
}

func (srv *packService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes a new pack in draft status.
func (srv *packService) Create(ctx context.Context, creatorID uuid.UUID, input usecase.CreatePackInput) (*entity.ElectivePack, error) {
	pack := &entity.ElectivePack{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Type:          input.Type,
		GroupID:       input.GroupID,
		ItemIDs:       input.ItemIDs,
		MaxSelections: input.MaxSelections,
		Deadline:      input.Deadline,
		Status:        entity.PackStatusDraft,
		CreatedBy:     creatorID,
	}
	if err := validatePack(pack); err != nil {
		return nil, err
	}

	if err := srv.packRepo.Create(ctx, pack); err != nil {
		return nil, errors.Wrap(err, "failed to create pack")
	}

	srv.loader.InvalidateNamespace(ctx, cache.NamespacePacks)

	srv.log(ctx).Info("Pack created", slog.Any("packID", pack.ID), slog.Any("type", pack.Type), slog.Any("groupID", pack.GroupID))

	return pack, nil
}

// Update edits a pack. Only draft packs are editable so published offerings
// never change under students' feet.
func (srv *packService) Update(ctx context.Context, packID uuid.UUID, input usecase.UpdatePackInput) (*entity.ElectivePack, error) {
	var updated *entity.ElectivePack
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		packRepo := repoFactory.PackRepo()

		pack, err := packRepo.FindByID(ctx, packID)
		if err != nil {
			if errors.Is(err, repository.ErrPackNotFound) {
				return domainerrors.ErrPackNotFound.WrapMessage("update rejected")
			}

			return errors.Wrap(err, "failed to load pack for update")
		}

		if pack.Status != entity.PackStatusDraft {
			return domainerrors.ErrPackTransition.WrapMessage("only draft packs are editable")
		}

		if input.Title != nil {
			pack.Title = strings.TrimSpace(*input.Title)
		}
		if input.Description != nil {
			pack.Description = strings.TrimSpace(*input.Description)
		}
		if input.ItemIDs != nil {
			pack.ItemIDs = input.ItemIDs
		}
		if input.MaxSelections != nil {
			pack.MaxSelections = *input.MaxSelections
		}
		if input.Deadline != nil {
			pack.Deadline = *input.Deadline
		}
		if err := validatePack(pack); err != nil {
			return err
		}

		if err := packRepo.Update(ctx, pack); err != nil {
			return errors.Wrap(err, "failed to update pack")
		}

		updated = pack

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.loader.InvalidateNamespace(ctx, cache.NamespacePacks)

	return updated, nil
}

// validatePack checks invariants shared by create and update.
func validatePack(pack *entity.ElectivePack) error {
	if pack.Title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}
	if pack.Type != entity.PackTypeCourse && pack.Type != entity.PackTypeExchange {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown pack type")
	}
	if len(pack.ItemIDs) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("a pack needs at least one item")
	}

	seen := make(map[uuid.UUID]struct{}, len(pack.ItemIDs))
	for _, itemID := range pack.ItemIDs {
		if _, dup := seen[itemID]; dup {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate item in pack")
		}
		seen[itemID] = struct{}{}
	}

	if pack.MaxSelections <= 0 || pack.MaxSelections > len(pack.ItemIDs) {
		return domainerrors.ErrValidationFailed.WrapMessage("selection limit must be between 1 and the item count")
	}

	return nil
}

// ChangeStatus moves a pack along its lifecycle.
func (srv *packService) ChangeStatus(ctx context.Context, packID uuid.UUID, next entity.PackStatus) (*entity.ElectivePack, error) {
	var changed *entity.ElectivePack
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		packRepo := repoFactory.PackRepo()

		pack, err := packRepo.FindByID(ctx, packID)
		if err != nil {
			if errors.Is(err, repository.ErrPackNotFound) {
				return domainerrors.ErrPackNotFound.WrapMessage("status change rejected")
			}

			return errors.Wrap(err, "failed to load pack for status change")
		}

		if !pack.Status.CanTransitionTo(next) {
			return domainerrors.ErrPackTransition.WrapMessage(
				fmt.Sprintf("cannot move pack from %s to %s", pack.Status, next))
		}

		if err := packRepo.UpdateStatus(ctx, pack.ID, next); err != nil {
			return errors.Wrap(err, "failed to change pack status")
		}

		pack.Status = next
		changed = pack

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.loader.InvalidateNamespace(ctx, cache.NamespacePacks)

	srv.log(ctx).Info("Pack status changed", slog.Any("packID", packID), slog.Any("status", next))

	return changed, nil
}

// Get returns a single pack.
func (srv *packService) Get(ctx context.Context, packID uuid.UUID) (*entity.ElectivePack, error) {
	pack, err := srv.packRepo.FindByID(ctx, packID)
	if err != nil {
		if errors.Is(err, repository.ErrPackNotFound) {
			return nil, domainerrors.ErrPackNotFound.WrapMessage("pack lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load pack")
	}

	return pack, nil
}

// ListForStudent returns published packs for the student's group, cache-first.
func (srv *packService) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.ElectivePack, error) {
	student, err := srv.profileRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load student for pack listing")
	}
	if student.GroupID == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("student has no group")
	}
	groupID := *student.GroupID

	return loadCached(ctx, srv.loader, cache.NamespacePacks, "group:"+groupID.String(), func(ctx context.Context) ([]*entity.ElectivePack, error) {
		return srv.packRepo.ListByGroup(ctx, groupID, []entity.PackStatus{entity.PackStatusPublished})
	})
}

// ListAll returns every pack for staff screens, read fresh.
func (srv *packService) ListAll(ctx context.Context) ([]*entity.ElectivePack, error) {
	packs, err := srv.packRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packs")
	}

	return packs, nil
}

// ShareQRCode renders a QR code PNG pointing at the pack's public page.
func (srv *packService) ShareQRCode(ctx context.Context, packID uuid.UUID) ([]byte, error) {
	pack, err := srv.Get(ctx, packID)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/packs/%s", srv.baseURL, pack.ID)
	png, err := srv.qrService.GeneratePNG(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pack QR code")
	}

	return png, nil
}

package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/repo_interfaces"
	"github.com/whiteshadows42/AccountManager/src/internal/commons"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
	"github.com/whiteshadows42/AccountManager/src/internal/events"
	"github.com/whiteshadows42/AccountManager/src/internal/logger"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
	"github.com/whiteshadows42/AccountManager/src/internal/usecase/service_interfaces"
)

type MovementService struct {
	movementRepo   repo_interfaces.MovementRepository
	accountService service_interfaces.AccountService
	publisher      events.Publisher
	ids            platform.IDGenerator
	clock          platform.Clock
}

func NewMovementService(
	movementRepo repo_interfaces.MovementRepository,
	accountService service_interfaces.AccountService,
	publisher events.Publisher,
	ids platform.IDGenerator,
	clock platform.Clock,
) *MovementService {
	return &MovementService{
		movementRepo:   movementRepo,
		accountService: accountService,
		publisher:      publisher,
		ids:            ids,
		clock:          clock,
	}
}

// Transfer validates and posts a movement between two accounts. Validation is
// fail-fast: type, account numbers, distinct accounts, existence, amount.
func (s *MovementService) Transfer(ctx context.Context, req models.TransferRequest) error {
	logger.Info("movement service transfer request", logger.Fields{
		"originAccount":      req.OriginAccountNumber,
		"destinationAccount": req.DestinationAccountNumber,
		"amount":             req.Amount,
		"type":               req.Type,
	})

	movementType, err := domain.ParseMovementType(req.Type)
	if err != nil {
		logger.Error("movement service transfer unknown type", err, nil)
		return err
	}

	if req.OriginAccountNumber <= 0 || req.DestinationAccountNumber <= 0 {
		return fmt.Errorf("%w: account numbers must be greater than zero", domain.ErrValidation)
	}
	if req.OriginAccountNumber == req.DestinationAccountNumber {
		return fmt.Errorf("%w: origin and destination accounts are equal", domain.ErrValidation)
	}

	// Existence reads are side-effect free and independent; run them in
	// parallel.
	var originExists, destinationExists bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		originExists, err = s.accountService.AccountExists(gctx, req.OriginAccountNumber)
		return err
	})
	g.Go(func() error {
		var err error
		destinationExists, err = s.accountService.AccountExists(gctx, req.DestinationAccountNumber)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("movement service transfer existence check failed", err, nil)
		return err
	}
	if !originExists || !destinationExists {
		return fmt.Errorf("%w: accounts do not exist", domain.ErrValidation)
	}

	// The request shape already guarantees a positive amount; re-checked here
	// because the posting must never run with a non-positive delta.
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}

	movement := domain.Movement{
		ID:                 s.ids.NewID(),
		OriginAccount:      req.OriginAccountNumber,
		DestinationAccount: req.DestinationAccountNumber,
		Amount:             req.Amount,
		Type:               movementType,
		DateTime:           s.clock.Now(),
		CreatedBy:          platform.ActorFromContext(ctx),
	}

	if err := s.movementRepo.PostTransfer(ctx, movement); err != nil {
		logger.Error("movement service transfer posting failed", err, logger.Fields{
			"movementId": movement.ID,
		})
		return err
	}

	if err := s.publisher.PublishMovementRecorded(ctx, events.MovementRecorded{
		MovementID:         movement.ID,
		OriginAccount:      movement.OriginAccount,
		DestinationAccount: movement.DestinationAccount,
		Amount:             movement.Amount,
		Type:               string(movement.Type),
		OccurredAt:         movement.DateTime,
	}); err != nil {
		// The transfer is committed; a lost event must not fail the request.
		logger.Error("movement service event publish failed", err, logger.Fields{
			"movementId": movement.ID,
		})
	}

	logger.Info("movement service transfer success", logger.Fields{
		"movementId": movement.ID,
	})

	return nil
}

func (s *MovementService) History(ctx context.Context, accountNumber string, startDate, endDate *time.Time, page commons.PageRequest) (commons.Page[models.MovementResponse], error) {
	logger.Info("movement service history request", logger.Fields{
		"accountNumber": accountNumber,
		"page":          page.Page,
		"size":          page.Size,
	})

	number, err := strconv.ParseInt(strings.TrimSpace(accountNumber), 10, 64)
	if err != nil || number <= 0 {
		return commons.Page[models.MovementResponse]{}, fmt.Errorf("%w: account number must be a positive integer", domain.ErrValidation)
	}

	now := s.clock.Now()
	today := platform.StartOfDay(now)

	var from, to *time.Time
	if startDate != nil {
		start := platform.DateIn(*startDate, now.Location())
		if start.After(today) {
			return commons.Page[models.MovementResponse]{}, fmt.Errorf("%w: start date must not be in the future", domain.ErrValidation)
		}
		from = &start
	}
	if endDate != nil {
		end := platform.DateIn(*endDate, now.Location())
		if from != nil && from.After(end) {
			return commons.Page[models.MovementResponse]{}, fmt.Errorf("%w: start date must not be after end date", domain.ErrValidation)
		}
		to = &end
	}

	filter := domain.MovementFilter{
		AccountNumber: number,
		From:          from,
		To:            to,
	}

	total, err := s.movementRepo.CountMatching(ctx, filter)
	if err != nil {
		logger.Error("movement service history count failed", err, nil)
		return commons.Page[models.MovementResponse]{}, err
	}

	movements, err := s.movementRepo.FindMatching(ctx, filter, page)
	if err != nil {
		logger.Error("movement service history find failed", err, nil)
		return commons.Page[models.MovementResponse]{}, err
	}

	content := make([]models.MovementResponse, 0, len(movements))
	for _, m := range movements {
		content = append(content, models.MovementResponse{
			OriginAccountNumber:      m.OriginAccount,
			DestinationAccountNumber: m.DestinationAccount,
			Amount:                   m.Amount,
			Type:                     string(m.Type),
			DateTime:                 m.DateTime,
		})
	}

	return commons.NewPage(content, page, total), nil
}

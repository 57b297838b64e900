package services

import (
	"context"
	"fmt"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/repo_interfaces"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
	"github.com/whiteshadows42/AccountManager/src/internal/logger"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
)

type ClientService struct {
	clientRepo repo_interfaces.ClientRepository
	ids        platform.IDGenerator
	clock      platform.Clock
}

func NewClientService(
	clientRepo repo_interfaces.ClientRepository,
	ids platform.IDGenerator,
	clock platform.Clock,
) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		ids:        ids,
		clock:      clock,
	}
}

func (s *ClientService) CreateClient(ctx context.Context, req models.ClientRequest) (models.ClientResponse, error) {
	logger.Info("client service create client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("client service create client validation failed", err, nil)
		return models.ClientResponse{}, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	birthDate, err := req.ParsedBirthDate()
	if err != nil {
		return models.ClientResponse{}, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	now := s.clock.Now()
	birthDate = platform.DateIn(birthDate, now.Location())
	if !birthDate.Before(platform.StartOfDay(now)) {
		err := fmt.Errorf("%w: birth date must be in the past", domain.ErrValidation)
		logger.Error("client service create client invalid birth date", err, nil)
		return models.ClientResponse{}, err
	}

	client := domain.Client{
		ID:        s.ids.NewID(),
		TaxID:     domain.NormalizeTaxID(req.TaxID),
		Name:      req.Name,
		BirthDate: birthDate,
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		logger.Error("client service create client repository failed", err, logger.Fields{
			"clientId": client.ID,
		})
		return models.ClientResponse{}, err
	}

	logger.Info("client service create client success", logger.Fields{
		"clientId": created.ID,
	})

	return models.ClientResponse{
		ID:        created.ID,
		TaxID:     created.TaxID,
		Name:      created.Name,
		BirthDate: created.BirthDate.Format("2006-01-02"),
	}, nil
}

func (s *ClientService) ExistsClient(ctx context.Context, taxID string) (bool, error) {
	return s.clientRepo.ExistsByTaxID(ctx, domain.NormalizeTaxID(taxID))
}

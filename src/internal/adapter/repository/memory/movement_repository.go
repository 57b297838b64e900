package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/repository/repo_interfaces"
	"github.com/whiteshadows42/AccountManager/src/internal/commons"
	"github.com/whiteshadows42/AccountManager/src/internal/domain"
)

type MovementRepository struct {
	store *Store
}

func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

func (r *MovementRepository) PostTransfer(ctx context.Context, movement domain.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	origin, originExists := r.store.accounts[movement.OriginAccount]
	destination, destinationExists := r.store.accounts[movement.DestinationAccount]
	if !originExists {
		return fmt.Errorf("%w: origin account %d vanished during posting", domain.ErrConsistency, movement.OriginAccount)
	}
	if !destinationExists {
		return fmt.Errorf("%w: destination account %d vanished during posting", domain.ErrConsistency, movement.DestinationAccount)
	}

	origin.Balance = origin.Balance.Sub(movement.Amount)
	destination.Balance = destination.Balance.Add(movement.Amount)
	r.store.accounts[movement.OriginAccount] = origin
	r.store.accounts[movement.DestinationAccount] = destination
	r.store.movements = append(r.store.movements, movement)
	return nil
}

func (r *MovementRepository) CountMatching(ctx context.Context, filter domain.MovementFilter) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, m := range r.store.movements {
		if filter.Matches(m) {
			count++
		}
	}
	return count, nil
}

func (r *MovementRepository) FindMatching(ctx context.Context, filter domain.MovementFilter, page commons.PageRequest) ([]domain.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []domain.Movement
	for _, m := range r.store.movements {
		if filter.Matches(m) {
			matched = append(matched, m)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		var cmp int
		if page.Sort.Field == "amount" {
			cmp = matched[i].Amount.Cmp(matched[j].Amount)
		} else {
			cmp = matched[i].DateTime.Compare(matched[j].DateTime)
		}
		if page.Sort.Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	offset := page.Offset()
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + page.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

var _ repo_interfaces.MovementRepository = (*MovementRepository)(nil)

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tiendafacil/lending-service/internal/application/dto"
	"github.com/tiendafacil/lending-service/internal/domain/port"
)

// GetCapitalUseCase retrieves the treasury state.
type GetCapitalUseCase struct {
	treasuryRepo port.TreasuryRepository
}

// NewGetCapitalUseCase wires dependencies.
func NewGetCapitalUseCase(treasuryRepo port.TreasuryRepository) *GetCapitalUseCase {
	return &GetCapitalUseCase{treasuryRepo: treasuryRepo}
}

// Execute retrieves the current capital figures.
func (uc *GetCapitalUseCase) Execute(ctx context.Context) (dto.CapitalResponse, error) {
	treasury, err := uc.treasuryRepo.Get(ctx)
	if err != nil {
		return dto.CapitalResponse{}, fmt.Errorf("load treasury: %w", err)
	}
	return capitalResponse(treasury), nil
}

// AdjustCapitalUseCase changes the lending capital ceiling.
type AdjustCapitalUseCase struct {
	treasuryRepo port.TreasuryRepository
	publisher    port.EventPublisher
}

// NewAdjustCapitalUseCase wires dependencies.
func NewAdjustCapitalUseCase(
	treasuryRepo port.TreasuryRepository,
	publisher port.EventPublisher,
) *AdjustCapitalUseCase {
	return &AdjustCapitalUseCase{
		treasuryRepo: treasuryRepo,
		publisher:    publisher,
	}
}

// Execute sets the new ceiling and publishes CapitalAdjusted.
func (uc *AdjustCapitalUseCase) Execute(ctx context.Context, req dto.AdjustCapitalRequest) (dto.CapitalResponse, error) {
	now := time.Now().UTC()

	treasury, err := uc.treasuryRepo.Get(ctx)
	if err != nil {
		return dto.CapitalResponse{}, fmt.Errorf("load treasury: %w", err)
	}
	treasury, err = treasury.SetTotalCapital(req.TotalCapital, now)
	if err != nil {
		return dto.CapitalResponse{}, fmt.Errorf("adjust capital: %w", err)
	}

	if err := uc.treasuryRepo.Save(ctx, treasury); err != nil {
		return dto.CapitalResponse{}, fmt.Errorf("save treasury: %w", err)
	}
	if err := uc.publisher.Publish(ctx, treasury.DomainEvents()...); err != nil {
		return dto.CapitalResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return capitalResponse(treasury), nil
}

package app

import (
	"github.com/saradorri/gamestore/internal/domain"
	"github.com/saradorri/gamestore/internal/infrastructure/logger"
	"github.com/saradorri/gamestore/internal/usecase/admin"
	"github.com/saradorri/gamestore/internal/usecase/customer"
)

func (a *application) InitAdminUseCase(
	gr domain.GameRepository,
	pr domain.PurchaseRepository,
	l *logger.Logger,
) domain.AdminUseCase {
	return admin.NewAdminUseCase(gr, pr, l)
}

func (a *application) InitCustomerUseCase(
	gr domain.GameRepository,
	pr domain.PurchaseRepository,
	sr domain.SessionRepository,
	l *logger.Logger,
) domain.CustomerUseCase {
	return customer.NewCustomerUseCase(gr, pr, sr, l)
}

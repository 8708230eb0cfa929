package components

import (
	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/credit"
	"booking-core/internal/infra/repository"
	"booking-core/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewAvailabilityRepository,
			fx.As(new(usecase.CalendarRepository)),
			fx.As(new(cart.AvailabilityReader)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(cart.OccupancyChecker)),
			fx.As(new(usecase.ReservationWriter)),
		),
		fx.Annotate(
			repository.NewPriceRepository,
			fx.As(new(cart.RateCardSource)),
		),
		fx.Annotate(
			repository.NewCreditRepository,
			fx.As(new(credit.Ledger)),
			fx.As(new(usecase.CreditWriter)),
		),
		fx.Annotate(
			repository.NewReservableRepository,
			fx.As(new(usecase.ReservableRepository)),
		),
		fx.Annotate(
			repository.NewPlanRepository,
			fx.As(new(usecase.PlanRepository)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(usecase.CouponApplier)),
		),
	),
)

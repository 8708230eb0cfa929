package components

import (
	"log/slog"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/credit"
	"booking-core/internal/infra/metrics"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.ModulesConfig { return cfg.Modules },
	func(booking config.BookingConfig, clk clock.Clock) *availability.WindowResolver {
		return availability.NewWindowResolver(availability.VisibilityConfig{
			YearlyMonths:               booking.VisibilityYearlyMonths,
			OthersMonths:               booking.VisibilityOthersMonths,
			ReservationDeadlineMinutes: booking.ReservationDeadlineMinutes,
		}, clk)
	},
	func(
		clk clock.Clock,
		availabilities cart.AvailabilityReader,
		occupancy cart.OccupancyChecker,
		rateCards cart.RateCardSource,
		ledger credit.Ledger,
	) cart.Services {
		return cart.Services{
			Clock:          clk,
			Availabilities: availabilities,
			Occupancy:      occupancy,
			RateCards:      rateCards,
			Ledger:         ledger,
		}
	},
)

var usecaseModule = fx.Module("usecase/booking",
	fx.Provide(
		usecase.NewAvailabilityUseCase,
		usecase.NewQuoteUseCase,
		func(
			users usecase.UserRepository,
			reservables usecase.ReservableRepository,
			plans usecase.PlanRepository,
			reservations usecase.ReservationWriter,
			credits usecase.CreditWriter,
			services cart.Services,
			booking config.BookingConfig,
			tx usecase.TxManager,
			clk clock.Clock,
			collector *metrics.Collector,
			logger *slog.Logger,
		) usecase.CheckoutUseCase {
			return usecase.NewCheckoutUseCase(
				users,
				reservables,
				plans,
				reservations,
				credits,
				services,
				booking.ExtendedPricesInSameDay,
				tx,
				clk,
				collector,
				logger,
			)
		},
	),
)

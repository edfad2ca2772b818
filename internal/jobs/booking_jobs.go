package jobs

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/utils"
)

// MarkNoShowBookings flags confirmed bookings whose check-in date has
// passed without the guest arriving
func (jr *JobRunner) MarkNoShowBookings() {
	jr.runWithRecovery("MarkNoShowBookings", func() {
		ctx := context.Background()

		today := utils.DateOnly(time.Now())
		stale, err := jr.store.BookingRepository.ListConfirmedBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to list stale confirmed bookings", "error", err)
			return
		}

		marked := 0
		for _, booking := range stale {
			booking.Status = domain.BookingStatusNoShow
			if err := jr.store.BookingRepository.Update(ctx, &booking); err != nil {
				logger.Error("Failed to mark booking as no-show",
					"booking_id", booking.ID, "error", err)
				continue
			}
			marked++
		}

		logger.Info("No-show bookings marked", "count", marked)
	})
}

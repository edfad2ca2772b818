package jobs

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/utils"
)

// ScheduleDailyHousekeeping creates a pending cleaning task for every
// occupied room that does not already have one for today
func (jr *JobRunner) ScheduleDailyHousekeeping() {
	jr.runWithRecovery("ScheduleDailyHousekeeping", func() {
		ctx := context.Background()
		today := utils.DateOnly(time.Now())

		occupied, _, err := jr.store.RoomRepository.List(ctx, domain.RoomStatusOccupied, 1, 500)
		if err != nil {
			logger.Error("Failed to list occupied rooms", "error", err)
			return
		}

		created := 0
		for _, room := range occupied {
			exists, err := jr.store.HousekeepingRepository.ExistsForRoomAndDate(ctx, room.ID, today)
			if err != nil {
				logger.Error("Failed to check existing housekeeping task",
					"room_id", room.ID, "error", err)
				continue
			}
			if exists {
				continue
			}

			task := &domain.HousekeepingTask{
				RoomID:       room.ID,
				Status:       domain.HousekeepingStatusPending,
				ScheduledFor: today,
				Notes:        "Daily stayover clean",
			}
			if _, err := jr.services.Housekeeping.CreateTask(ctx, task, "system"); err != nil {
				logger.Error("Failed to create housekeeping task",
					"room_id", room.ID, "error", err)
				continue
			}
			created++
		}

		logger.Info("Daily housekeeping scheduled", "tasks_created", created, "occupied_rooms", len(occupied))
	})
}

package service

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
	"hotelier-backend/internal/utils"
)

type reportService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
	invoiceRepo repository.InvoiceRepository
}

func NewReportService(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository, invoiceRepo repository.InvoiceRepository) ReportService {
	return &reportService{roomRepo: roomRepo, bookingRepo: bookingRepo, invoiceRepo: invoiceRepo}
}

func (s *reportService) OccupancySummary(ctx context.Context) (*OccupancyReport, error) {
	counts, err := s.roomRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int32
	for _, n := range counts {
		total += n
	}

	report := &OccupancyReport{
		TotalRooms: total,
		ByStatus:   counts,
	}
	if total > 0 {
		report.OccupancyRate = float64(counts[domain.RoomStatusOccupied]) / float64(total)
	}
	return report, nil
}

func (s *reportService) RevenueSummary(ctx context.Context, from, to time.Time) (*RevenueReport, error) {
	paid, outstanding, err := s.invoiceRepo.RevenueSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &RevenueReport{
		From:             from,
		To:               to,
		PaidCents:        paid,
		OutstandingCents: outstanding,
	}, nil
}

// DailyMovements counts today's arrivals, departures and the in-house
// guest count, using the same date-only comparison as the front-desk
// guest buckets.
func (s *reportService) DailyMovements(ctx context.Context) (*MovementsReport, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := utils.DateOnly(time.Now())
	report := &MovementsReport{Date: today}
	for _, b := range bookings {
		if !b.HasValidDates() {
			continue
		}
		switch b.Status {
		case domain.BookingStatusConfirmed:
			if utils.DateOnly(b.CheckIn).Equal(today) {
				report.Arrivals++
			}
		case domain.BookingStatusCheckedIn:
			if utils.DateOnly(b.CheckOut).Equal(today) {
				report.Departures++
			} else {
				report.InHouse++
			}
		case domain.BookingStatusCheckedOut:
			if utils.DateOnly(b.CheckOut).Equal(today) {
				report.Departures++
			}
		}
	}
	return report, nil
}

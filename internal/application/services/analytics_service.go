package services

import (
	"context"
	"time"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
)

const monthlyBuckets = 6

// Short pt-BR month names, indexed by time.Month - 1.
var monthNames = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// Appointment dates arrive as YYYY-MM-DD from the clients; RFC3339 is
// accepted as a fallback for records written by other tooling.
var appointmentDateLayouts = []string{"2006-01-02", time.RFC3339}

// AnalyticsService computes the rollup over all stored records. Nothing
// is cached: every call is a fresh scan of every entity type.
type AnalyticsService struct {
	services     repositories.ServiceRepository
	appointments repositories.AppointmentRepository
	reviews      repositories.ReviewRepository
	users        repositories.UserRepository
	now          func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	services repositories.ServiceRepository,
	appointments repositories.AppointmentRepository,
	reviews repositories.ReviewRepository,
	users repositories.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		services:     services,
		appointments: appointments,
		reviews:      reviews,
		users:        users,
		now:          time.Now,
	}
}

// WithClock overrides the rollup's notion of the current time. Tests use
// this to pin the monthly buckets.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

// Compute builds the full rollup
func (s *AnalyticsService) Compute(ctx context.Context) (*entities.Analytics, error) {
	services, err := s.services.List(ctx, repositories.ServiceFilter{})
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	appointmentsByStatus := make(map[string]int)
	for _, appointment := range appointments {
		appointmentsByStatus[string(appointment.Status)]++
	}

	servicesByCategory := make(map[string]int)
	for _, service := range services {
		servicesByCategory[service.Category]++
	}

	return &entities.Analytics{
		TotalServices:        len(services),
		TotalAppointments:    len(appointments),
		TotalReviews:         len(reviews),
		TotalUsers:           len(users),
		AppointmentsByStatus: appointmentsByStatus,
		ServicesByCategory:   servicesByCategory,
		MonthlyAppointments:  s.monthlyAppointments(appointments),
	}, nil
}

// monthlyAppointments buckets appointments into the 6 calendar months
// ending at the current one, oldest first. The sequence always has 6
// entries; months without appointments count 0. Unparseable dates count
// nowhere.
func (s *AnalyticsService) monthlyAppointments(appointments []*entities.Appointment) []entities.MonthlyBucket {
	now := s.now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := make([]entities.MonthlyBucket, 0, monthlyBuckets)
	for i := monthlyBuckets - 1; i >= 0; i-- {
		month := currentMonth.AddDate(0, -i, 0)

		count := 0
		for _, appointment := range appointments {
			date, ok := parseAppointmentDate(appointment.Date)
			if !ok {
				continue
			}
			if date.Year() == month.Year() && date.Month() == month.Month() {
				count++
			}
		}

		buckets = append(buckets, entities.MonthlyBucket{
			Month: monthNames[month.Month()-1],
			Count: count,
		})
	}
	return buckets
}

func parseAppointmentDate(value string) (time.Time, bool) {
	for _, layout := range appointmentDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

package admin

import (
	"fmt"
	"time"

	bookingRepo "jobmate/database/repository/booking"
	employeeRepo "jobmate/database/repository/employee"
	userRepo "jobmate/database/repository/user"
	"jobmate/models"
)

// fraudThreshold flags customers with this many cancelled or rejected
// bookings.
const fraudThreshold = 5

// DashboardStats is the admin analytics snapshot.
type DashboardStats struct {
	TotalUsers           int64                          `json:"total_users"`
	TotalEmployees       int64                          `json:"total_employees"`
	TotalCustomers       int64                          `json:"total_customers"`
	PendingVerifications int64                          `json:"pending_verifications"`
	TotalBookings        int64                          `json:"total_bookings"`
	BookingsByStatus     map[models.BookingStatus]int64 `json:"bookings_by_status"`
	RecentBookings       int64                          `json:"recent_bookings"`
	Revenue              float64                        `json:"revenue"`
	FraudFlags           []bookingRepo.FraudFlag        `json:"fraud_flags"`
	LatestBookings       []models.Booking               `json:"latest_bookings"`
	UnverifiedEmployees  []models.EmployeeProfile       `json:"unverified_employees"`
}

// AdminService backs the analytics dashboard and employee verification.
type AdminService interface {
	Dashboard() (*DashboardStats, error)
	VerifyEmployee(profileID string) error
}

// DefaultAdminService implements AdminService on the repositories.
type DefaultAdminService struct {
	UserRepo     userRepo.UserRepository
	EmployeeRepo employeeRepo.EmployeeRepository
	BookingRepo  bookingRepo.BookingRepository
}

// Dashboard assembles the analytics snapshot: account and booking totals,
// status distribution, 30-day activity, completed revenue and fraud flags.
func (svc *DefaultAdminService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = svc.UserRepo.Count(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.TotalEmployees, err = svc.UserRepo.CountByRole(models.RoleEmployee); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.TotalCustomers, err = svc.UserRepo.CountByRole(models.RoleCustomer); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.PendingVerifications, err = svc.EmployeeRepo.CountUnverified(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.TotalBookings, err = svc.BookingRepo.CountAll(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	statusCounts, err := svc.BookingRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	stats.BookingsByStatus = make(map[models.BookingStatus]int64, len(statusCounts))
	for _, sc := range statusCounts {
		stats.BookingsByStatus[sc.Status] = sc.Count
	}

	last30Days := time.Now().AddDate(0, 0, -30)
	if stats.RecentBookings, err = svc.BookingRepo.CountCreatedSince(last30Days); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.Revenue, err = svc.BookingRepo.CompletedRevenue(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.FraudFlags, err = svc.BookingRepo.FraudFlags(fraudThreshold); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.LatestBookings, err = svc.BookingRepo.Latest(20); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if stats.UnverifiedEmployees, err = svc.EmployeeRepo.Unverified(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return stats, nil
}

// VerifyEmployee approves an employee's registration.
func (svc *DefaultAdminService) VerifyEmployee(profileID string) error {
	return svc.EmployeeRepo.SetVerified(profileID)
}

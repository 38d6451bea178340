package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// Create holds the store lock across the existence check and the
// insert, so the one-record-per-(employee, date) invariant holds under
// concurrent check-ins.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := dayKey(att.EmployeeID, att.Date)
	if _, exists := r.store.attendanceByDay[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}

	now := time.Now().UTC()
	att.ID = uuid.NewString()
	att.CreatedAt = now
	att.UpdatedAt = now

	r.store.attendances[att.ID] = att
	r.store.attendanceByDay[key] = att.ID
	return att, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	att, ok := r.store.attendances[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, ok := r.store.attendanceByDay[dayKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return r.store.attendances[id], nil
}

func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.attendances[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	att.UpdatedAt = time.Now().UTC()
	r.store.attendances[att.ID] = att
	return nil
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []attendance.Attendance
	for _, att := range r.store.attendances {
		if att.EmployeeID != employeeID {
			continue
		}
		if att.Date.Before(startDate) || att.Date.After(endDate) {
			continue
		}
		result = append(result, att)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

package compliance

import (
	"fmt"
	"sort"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/compliance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/shift"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

// CheckRestPeriodViolations scans each staff member's shifts in
// chronological order and flags every consecutive pair whose gap, in whole
// hours, falls below the minimum. A gap of exactly the minimum is compliant.
func CheckRestPeriodViolations(shifts []shift.Shift, profiles []staff.Profile, minRestHours int) []compliance.Warning {
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.ID] = p.FullName
	}

	byStaff := make(map[string][]shift.Shift)
	for _, sh := range shifts {
		byStaff[sh.StaffID] = append(byStaff[sh.StaffID], sh)
	}

	staffIDs := make([]string, 0, len(byStaff))
	for id := range byStaff {
		staffIDs = append(staffIDs, id)
	}
	sort.Strings(staffIDs)

	var warnings []compliance.Warning
	for _, staffID := range staffIDs {
		rota := byStaff[staffID]
		sort.Slice(rota, func(i, j int) bool {
			if rota[i].Date != rota[j].Date {
				return rota[i].Date < rota[j].Date
			}
			return rota[i].Start.Minutes() < rota[j].Start.Minutes()
		})

		name := names[staffID]
		if name == "" && rota[0].StaffName != nil {
			name = *rota[0].StaffName
		}

		for i := 1; i < len(rota); i++ {
			prev, next := rota[i-1], rota[i]

			prevEnd, err := prev.EndInstant()
			if err != nil {
				continue
			}
			nextStart, err := next.StartInstant()
			if err != nil {
				continue
			}

			restHours := int(nextStart.Sub(prevEnd).Hours())
			if restHours >= minRestHours {
				continue
			}

			warnings = append(warnings, compliance.Warning{
				Kind:             compliance.KindRestPeriod,
				StaffID:          staffID,
				StaffName:        name,
				Message:          fmt.Sprintf("only %dh rest before shift on %s, minimum is %dh", restHours, next.Date, minRestHours),
				ShiftDate:        next.Date,
				PreviousShiftEnd: prev.Date + " " + prev.End.String(),
				NextShiftStart:   next.Date + " " + next.Start.String(),
				RestHours:        restHours,
			})
		}
	}
	return warnings
}

package request

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"carmate/pkg/domain"
	"carmate/pkg/serrors"
)

var vinRe = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{11,17}$`)

const (
	minYear     = 1980
	maxMileage  = 999999
	minSymptoms = 10
)

// ValidateCreateInput checks an intake form against the request rules and
// returns the input in canonical form (trimmed strings, uppercased VIN).
func ValidateCreateInput(in CreateInput) (CreateInput, error) {
	in.Vehicle.Make = strings.TrimSpace(in.Vehicle.Make)
	in.Vehicle.Model = strings.TrimSpace(in.Vehicle.Model)
	in.Vehicle.VIN = strings.ToUpper(strings.TrimSpace(in.Vehicle.VIN))
	in.Vehicle.LicensePlate = strings.TrimSpace(in.Vehicle.LicensePlate)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	in.Symptoms = strings.TrimSpace(in.Symptoms)
	in.Location = strings.TrimSpace(in.Location)

	if len(in.Vehicle.Make) < 2 {
		return in, serrors.With(serrors.ErrBadRequest, "vehicle make is required")
	}
	if in.Vehicle.Model == "" {
		return in, serrors.With(serrors.ErrBadRequest, "vehicle model is required")
	}
	if in.Vehicle.Year < minYear || in.Vehicle.Year > time.Now().Year()+1 {
		return in, serrors.With(serrors.ErrBadRequest, "vehicle year out of range")
	}
	if in.Vehicle.VIN != "" && !vinRe.MatchString(in.Vehicle.VIN) {
		return in, serrors.With(serrors.ErrBadRequest, "invalid VIN")
	}
	if in.Vehicle.Mileage < 0 || in.Vehicle.Mileage > maxMileage {
		return in, serrors.With(serrors.ErrBadRequest, "mileage out of range")
	}

	if !slices.Contains(domain.ServiceTypes, in.ServiceType) {
		return in, serrors.With(serrors.ErrBadRequest, "unknown service type")
	}
	if len(in.Symptoms) < minSymptoms {
		return in, serrors.With(serrors.ErrBadRequest, "symptoms must be at least 10 characters")
	}
	if len(in.Location) < 2 {
		return in, serrors.With(serrors.ErrBadRequest, "location is required")
	}
	if in.PreferredDate.IsZero() {
		return in, serrors.With(serrors.ErrBadRequest, "preferred date is required")
	}

	switch in.PreferredTimeWindow {
	case domain.TimeWindowMorning, domain.TimeWindowAfternoon, domain.TimeWindowEvening, domain.TimeWindowFlexible:
	default:
		return in, serrors.With(serrors.ErrBadRequest, "invalid time window")
	}

	switch in.Urgency {
	case domain.UrgencyLow, domain.UrgencyMedium, domain.UrgencyHigh:
	default:
		return in, serrors.With(serrors.ErrBadRequest, "invalid urgency")
	}

	return in, nil
}

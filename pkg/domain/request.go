package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestID uniquely identifies a service request.
type RequestID uuid.UUID

// PhotoID uniquely identifies an uploaded request photo.
type PhotoID uuid.UUID

// RequestStatus represents the lifecycle state of a service request.
type RequestStatus string

const (
	// RequestStatusOpen indicates the request is waiting for quotes.
	RequestStatusOpen RequestStatus = "OPEN"
	// RequestStatusQuoted indicates at least one provider has quoted.
	RequestStatusQuoted RequestStatus = "QUOTED"
	// RequestStatusAccepted indicates the customer accepted a quote.
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	// RequestStatusCompleted indicates the provider finished the work.
	RequestStatusCompleted RequestStatus = "COMPLETED"
	// RequestStatusCancelled indicates the customer withdrew the request.
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// TimeWindow is the part of day the customer prefers for the appointment.
type TimeWindow string

const (
	TimeWindowMorning   TimeWindow = "MORNING"
	TimeWindowAfternoon TimeWindow = "AFTERNOON"
	TimeWindowEvening   TimeWindow = "EVENING"
	TimeWindowFlexible  TimeWindow = "FLEXIBLE"
)

// Urgency is the customer-declared priority of the request.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// Vehicle describes the car a service request is about. Plate, VIN and
// mileage are optional on the intake form.
type Vehicle struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate,omitempty"`
	VIN          string `json:"vin,omitempty"`
	Mileage      int    `json:"mileage,omitempty"`
}

// ServiceRequest is a customer's ask for a quote/appointment on a vehicle.
// It tracks the vehicle, the problem description, scheduling preferences and
// the request lifecycle state.
type ServiceRequest struct {
	// ID is the unique identifier of the request.
	ID RequestID `json:"id"`
	// CustomerID identifies the user who filed the request.
	CustomerID UserID `json:"customerId"`

	// Vehicle is the car the request is about.
	Vehicle Vehicle `json:"vehicle"`

	// ServiceType is one of the catalog categories (Oil Change, Brake Service, ...).
	ServiceType string `json:"serviceType"`
	// Symptoms is the free-text problem description.
	Symptoms string `json:"symptoms"`
	// PreferredDate is the day the customer wants the work done.
	PreferredDate time.Time `json:"preferredDate"`
	// PreferredTimeWindow narrows PreferredDate to a part of day.
	PreferredTimeWindow TimeWindow `json:"preferredTimeWindow"`
	// Location is the city/area where the service should happen.
	Location string `json:"location"`
	// Urgency is the customer-declared priority.
	Urgency Urgency `json:"urgency"`

	// Status is the current lifecycle state.
	Status RequestStatus `json:"status"`
	// AcceptedQuoteID is set once the customer accepts a quote.
	AcceptedQuoteID *QuoteID `json:"acceptedQuoteId,omitempty"`

	// Photos holds the uploaded supporting images, when loaded.
	Photos []RequestPhoto `json:"photos,omitempty"`

	// CreatedAt is when the request was filed.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the request last changed state.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// RequestPhoto is an uploaded image attached to a service request. The bytes
// live on disk; the row records metadata and the storage path.
type RequestPhoto struct {
	ID          PhotoID   `json:"id"`
	RequestID   RequestID `json:"requestId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	StoredPath  string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceTypes is the catalog of request categories offered on the intake
// form. "Other" is the catch-all.
var ServiceTypes = []string{
	"Oil Change",
	"Brake Service",
	"Tire / Alignment",
	"Battery / Electrical",
	"Engine / Check Light",
	"AC / Heating",
	"Inspection",
	"Other",
}

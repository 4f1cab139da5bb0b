package booking

import (
	"fmt"
	"time"

	"leprive/internal/domain"
	"leprive/internal/pkg/validator"
)

type Step int

const (
	StepPersonalInfo Step = 1
	StepDetails      Step = 2
	StepConfirmation Step = 3
)

// Listing is the fixed target of one wizard instance: id, display name,
// price and location as shown on the gallery card that opened it.
type Listing struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Location string `json:"location"`
}

// Draft is the mutable state of one in-progress booking attempt. All fields
// start empty except the two select inputs, which carry the form defaults.
type Draft struct {
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone"`
	Date     string             `json:"date"`
	Time     string             `json:"time"`
	Duration domain.Duration    `json:"duration"`
	Service  domain.ServiceType `json:"service"`
	Location string             `json:"location"`
	Requests string             `json:"requests"`
}

func NewDraft() Draft {
	return Draft{
		Duration: domain.Duration2h,
		Service:  domain.ServiceDinner,
	}
}

type ErrorKind string

const (
	EmptyRequiredField ErrorKind = "EmptyRequiredField"
	InvalidEmailFormat ErrorKind = "InvalidEmailFormat"
	InvalidDateInPast  ErrorKind = "InvalidDateInPast"
	InvalidChoice      ErrorKind = "InvalidChoice"
	UnknownField       ErrorKind = "UnknownField"
)

type FieldError struct {
	Field string    `json:"field"`
	Kind  ErrorKind `json:"kind"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

// Wizard is the three-step booking form state machine. It is a plain value
// updated through SetField/Next/Previous/Reset; nothing here touches the
// network, which keeps the transition table unit-testable on its own.
type Wizard struct {
	Listing Listing `json:"listing"`
	Step    Step    `json:"step"`
	Draft   Draft   `json:"draft"`
}

func NewWizard(listing Listing) *Wizard {
	return &Wizard{
		Listing: listing,
		Step:    StepPersonalInfo,
		Draft:   NewDraft(),
	}
}

// SetField updates one draft field by its form name.
func (w *Wizard) SetField(name, value string) *FieldError {
	switch name {
	case "name":
		w.Draft.Name = value
	case "email":
		w.Draft.Email = value
	case "phone":
		w.Draft.Phone = value
	case "date":
		w.Draft.Date = value
	case "time":
		w.Draft.Time = value
	case "duration":
		w.Draft.Duration = domain.Duration(value)
	case "service":
		w.Draft.Service = domain.ServiceType(value)
	case "location":
		w.Draft.Location = value
	case "specialRequests":
		w.Draft.Requests = value
	default:
		return &FieldError{Field: name, Kind: UnknownField}
	}
	return nil
}

// Next validates the current step and advances when it is clean. On the
// confirmation step Next does nothing; the only way forward is Confirm.
func (w *Wizard) Next(now time.Time) []FieldError {
	if w.Step >= StepConfirmation {
		return nil
	}
	if errs := ValidateStep(w.Step, w.Draft, now); len(errs) > 0 {
		return errs
	}
	w.Step++
	return nil
}

func (w *Wizard) Previous() {
	if w.Step > StepPersonalInfo {
		w.Step--
	}
}

// Reset clears the draft and returns to the first step, keeping the listing.
func (w *Wizard) Reset() {
	w.Step = StepPersonalInfo
	w.Draft = NewDraft()
}

// ValidateStep checks the required fields a step owns. Step 3 owns none; its
// gate is that steps 1 and 2 validated on the way in.
func ValidateStep(step Step, d Draft, now time.Time) []FieldError {
	var errs []FieldError

	switch step {
	case StepPersonalInfo:
		if d.Name == "" {
			errs = append(errs, FieldError{Field: "name", Kind: EmptyRequiredField})
		}
		if d.Email == "" {
			errs = append(errs, FieldError{Field: "email", Kind: EmptyRequiredField})
		} else if !validator.Var(d.Email, "email") {
			errs = append(errs, FieldError{Field: "email", Kind: InvalidEmailFormat})
		}
		if d.Phone == "" {
			errs = append(errs, FieldError{Field: "phone", Kind: EmptyRequiredField})
		}

	case StepDetails:
		if d.Date == "" {
			errs = append(errs, FieldError{Field: "date", Kind: EmptyRequiredField})
		} else if day, err := time.Parse("2006-01-02", d.Date); err != nil || dayBefore(day, now) {
			errs = append(errs, FieldError{Field: "date", Kind: InvalidDateInPast})
		}
		if d.Time == "" {
			errs = append(errs, FieldError{Field: "time", Kind: EmptyRequiredField})
		}
		if !d.Duration.Valid() {
			errs = append(errs, FieldError{Field: "duration", Kind: InvalidChoice})
		}
		if !d.Service.Valid() {
			errs = append(errs, FieldError{Field: "service", Kind: InvalidChoice})
		}
		if d.Location == "" {
			errs = append(errs, FieldError{Field: "location", Kind: EmptyRequiredField})
		}
	}

	return errs
}

// ValidateDraft runs both owning steps, the gate in front of Confirm.
func ValidateDraft(d Draft, now time.Time) []FieldError {
	errs := ValidateStep(StepPersonalInfo, d, now)
	return append(errs, ValidateStep(StepDetails, d, now)...)
}

func dayBefore(day, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// Summary is the read-only step 3 view of the accumulated draft.
type Summary struct {
	CompanionName string `json:"companion_name"`
	DateTime      string `json:"date_time"`
	Duration      string `json:"duration"`
	Service       string `json:"service"`
	// Total is the listing price verbatim. It does not vary with duration or
	// service. TODO: pricing per duration/service once the product decides.
	Total string `json:"total"`
}

func (w *Wizard) Summary() Summary {
	return Summary{
		CompanionName: w.Listing.Name,
		DateTime:      fmt.Sprintf("%s at %s", w.Draft.Date, w.Draft.Time),
		Duration:      fmt.Sprintf("%s hours", w.Draft.Duration),
		Service:       string(w.Draft.Service),
		Total:         w.Listing.Price,
	}
}

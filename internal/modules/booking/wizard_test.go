package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func isabella() Listing {
	return Listing{ID: 1, Name: "Isabella", Price: "R$ 800/h", Location: "São Paulo"}
}

func fillStep1(w *Wizard) {
	w.SetField("name", "Ana")
	w.SetField("email", "ana@x.com")
	w.SetField("phone", "+551199999999")
}

func fillStep2(w *Wizard) {
	w.SetField("date", "2025-06-10")
	w.SetField("time", "19:00")
	w.SetField("duration", "2")
	w.SetField("service", "dinner")
	w.SetField("location", "Hotel X")
}

func TestWizard_InitialState(t *testing.T) {
	w := NewWizard(isabella())

	assert.Equal(t, StepPersonalInfo, w.Step)
	assert.Empty(t, w.Draft.Name)
	assert.Empty(t, w.Draft.Email)
	assert.Empty(t, w.Draft.Phone)
	// The two selects carry the form defaults.
	assert.Equal(t, "2", string(w.Draft.Duration))
	assert.Equal(t, "dinner", string(w.Draft.Service))
}

func TestWizard_NextBlockedOnEmptyStep1(t *testing.T) {
	w := NewWizard(isabella())

	errs := w.Next(testNow)

	require.Len(t, errs, 3)
	assert.Equal(t, StepPersonalInfo, w.Step, "transition must be refused while required fields are empty")
	for _, e := range errs {
		assert.Equal(t, EmptyRequiredField, e.Kind)
	}
}

func TestWizard_NextBlockedOnInvalidEmail(t *testing.T) {
	w := NewWizard(isabella())
	fillStep1(w)
	w.SetField("email", "not-an-email")

	errs := w.Next(testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldError{Field: "email", Kind: InvalidEmailFormat}, errs[0])
	assert.Equal(t, StepPersonalInfo, w.Step)
}

func TestWizard_NextBlockedOnPastDate(t *testing.T) {
	w := NewWizard(isabella())
	fillStep1(w)
	require.Empty(t, w.Next(testNow))

	fillStep2(w)
	w.SetField("date", "2024-12-31")

	errs := w.Next(testNow)

	require.Len(t, errs, 1)
	assert.Equal(t, FieldError{Field: "date", Kind: InvalidDateInPast}, errs[0])
	assert.Equal(t, StepDetails, w.Step)
}

func TestWizard_NextBlockedOnMissingStep2Fields(t *testing.T) {
	w := NewWizard(isabella())
	fillStep1(w)
	require.Empty(t, w.Next(testNow))

	errs := w.Next(testNow)

	// date, time and location are required; duration and service hold defaults.
	require.Len(t, errs, 3)
	fields := map[string]ErrorKind{}
	for _, e := range errs {
		fields[e.Field] = e.Kind
	}
	assert.Equal(t, EmptyRequiredField, fields["date"])
	assert.Equal(t, EmptyRequiredField, fields["time"])
	assert.Equal(t, EmptyRequiredField, fields["location"])
}

func TestWizard_InvalidChoices(t *testing.T) {
	w := NewWizard(isabella())
	fillStep1(w)
	require.Empty(t, w.Next(testNow))
	fillStep2(w)
	w.SetField("duration", "3")
	w.SetField("service", "karaoke")

	errs := w.Next(testNow)

	require.Len(t, errs, 2)
	assert.Equal(t, FieldError{Field: "duration", Kind: InvalidChoice}, errs[0])
	assert.Equal(t, FieldError{Field: "service", Kind: InvalidChoice}, errs[1])
}

func TestWizard_PreviousAndNoSkipping(t *testing.T) {
	w := NewWizard(isabella())

	w.Previous()
	assert.Equal(t, StepPersonalInfo, w.Step, "previous on step 1 stays on step 1")

	fillStep1(w)
	require.Empty(t, w.Next(testNow))
	assert.Equal(t, StepDetails, w.Step)

	w.Previous()
	assert.Equal(t, StepPersonalInfo, w.Step)
	assert.Equal(t, "Ana", w.Draft.Name, "going back must not lose entered fields")

	require.Empty(t, w.Next(testNow))
	fillStep2(w)
	require.Empty(t, w.Next(testNow))
	assert.Equal(t, StepConfirmation, w.Step)

	// Next past the confirmation step does not exist.
	assert.Empty(t, w.Next(testNow))
	assert.Equal(t, StepConfirmation, w.Step)
}

func TestWizard_SetFieldUnknown(t *testing.T) {
	w := NewWizard(isabella())

	fe := w.SetField("favoriteColor", "red")

	require.NotNil(t, fe)
	assert.Equal(t, UnknownField, fe.Kind)
}

func TestWizard_SummaryCarriesListingPriceVerbatim(t *testing.T) {
	w := NewWizard(isabella())
	fillStep1(w)
	require.Empty(t, w.Next(testNow))
	fillStep2(w)

	for _, duration := range []string{"2", "4", "8", "24"} {
		w.SetField("duration", duration)
		require.Empty(t, w.Next(testNow))

		s := w.Summary()
		assert.Equal(t, "Isabella", s.CompanionName)
		assert.Equal(t, "2025-06-10 at 19:00", s.DateTime)
		assert.Equal(t, duration+" hours", s.Duration)
		assert.Equal(t, "dinner", s.Service)
		// Known gap: the total never varies with duration or service.
		assert.Equal(t, "R$ 800/h", s.Total)

		w.Previous()
	}
}

func TestWizard_ResetClearsDraftKeepsListing(t *testing.T) {
	w := NewWizard(isabella())
	fillStep1(w)
	require.Empty(t, w.Next(testNow))
	fillStep2(w)

	w.Reset()

	assert.Equal(t, StepPersonalInfo, w.Step)
	assert.Equal(t, NewDraft(), w.Draft)
	assert.Equal(t, isabella(), w.Listing)
}

func TestValidateDraft_CoversBothSteps(t *testing.T) {
	errs := ValidateDraft(NewDraft(), testNow)

	// name, email, phone, date, time, location all empty.
	assert.Len(t, errs, 6)
}

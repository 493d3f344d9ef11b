package contactclient

import (
	"sync"

	"github.com/voyager-inc/contactrelay/pkg/contact"
)

// Form is the UI the handler drives.
type Form interface {
	// Values returns the raw field values; the handler trims them.
	Values() contact.Submission
	// Reset clears every field.
	Reset()
	// SetSubmitting disables the submit control and shows the sending
	// label when true, and restores both when false.
	SetSubmitting(submitting bool)
}

// MemoryForm is a Form held in memory, used by the CLI and in tests.
type MemoryForm struct {
	mu          sync.Mutex
	values      contact.Submission
	label       string
	submitting  bool
	transitions int
}

// NewMemoryForm returns a form prefilled with values and a submit control
// labelled label.
func NewMemoryForm(values contact.Submission, label string) *MemoryForm {
	return &MemoryForm{values: values, label: label}
}

func (f *MemoryForm) Values() contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Set replaces the field values.
func (f *MemoryForm) Set(values contact.Submission) {
	f.mu.Lock()
	f.values = values
	f.mu.Unlock()
}

func (f *MemoryForm) Reset() {
	f.mu.Lock()
	f.values = contact.Submission{}
	f.mu.Unlock()
}

func (f *MemoryForm) SetSubmitting(submitting bool) {
	f.mu.Lock()
	if f.submitting != submitting {
		f.transitions++
	}
	f.submitting = submitting
	f.mu.Unlock()
}

// Submitting reports whether the submit control is disabled.
func (f *MemoryForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SubmitLabel is the text currently shown on the submit control.
func (f *MemoryForm) SubmitLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return contact.MsgClientSending
	}
	return f.label
}

// Transitions counts changes of the submitting state.
func (f *MemoryForm) Transitions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transitions
}

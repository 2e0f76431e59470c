// Package modal arbitrates the single user prompt a console session may show.
package modal

// Kind selects the default title and button layout of a prompt.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
	KindConfirm Kind = "confirm"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindInfo, KindSuccess, KindWarning, KindError, KindConfirm:
		return true
	}
	return false
}

// DefaultTitle returns the title shown when a request omits one.
func (k Kind) DefaultTitle() string {
	switch k {
	case KindSuccess:
		return "Berhasil"
	case KindError:
		return "Error"
	case KindWarning:
		return "Peringatan"
	case KindConfirm:
		return "Konfirmasi"
	default:
		return "Pemberitahuan"
	}
}

// Outcome is the settlement of a request.
type Outcome string

const (
	OutcomeConfirm Outcome = "confirm"
	OutcomeCancel  Outcome = "cancel"
	OutcomeClose   Outcome = "close"
)

const (
	defaultConfirmLabel = "OK"
	defaultCancelLabel  = "Batal"
	confirmYesLabel     = "Ya"
	confirmNoLabel      = "Tidak"
)

// Request enumerates every option a caller may pass. Zero values mean "use the default".
type Request struct {
	Kind            Kind
	Title           string
	Message         string
	ConfirmLabel    string
	CancelLabel     string
	ShowCancel      *bool
	ShowCloseButton *bool
}

// Prompt is a normalized request, ready to render.
type Prompt struct {
	ID              string `json:"id"`
	Kind            Kind   `json:"kind"`
	Title           string `json:"title"`
	Message         string `json:"message"`
	ConfirmLabel    string `json:"confirmLabel"`
	CancelLabel     string `json:"cancelLabel"`
	ShowCancel      bool   `json:"showCancel"`
	ShowCloseButton bool   `json:"showCloseButton"`
}

// Normalize applies the defaults. Unknown kinds fall back to info and
// confirm prompts always offer a cancel button.
func (r Request) Normalize() Prompt {
	kind := r.Kind
	if !kind.Valid() {
		kind = KindInfo
	}
	p := Prompt{
		Kind:            kind,
		Title:           r.Title,
		Message:         r.Message,
		ConfirmLabel:    r.ConfirmLabel,
		CancelLabel:     r.CancelLabel,
		ShowCloseButton: true,
	}
	if p.Title == "" {
		p.Title = kind.DefaultTitle()
	}
	if r.ShowCancel != nil {
		p.ShowCancel = *r.ShowCancel
	}
	if r.ShowCloseButton != nil {
		p.ShowCloseButton = *r.ShowCloseButton
	}
	if kind == KindConfirm {
		p.ShowCancel = true
		if p.ConfirmLabel == "" {
			p.ConfirmLabel = confirmYesLabel
		}
		if p.CancelLabel == "" {
			p.CancelLabel = confirmNoLabel
		}
	}
	if p.ConfirmLabel == "" {
		p.ConfirmLabel = defaultConfirmLabel
	}
	if p.CancelLabel == "" {
		p.CancelLabel = defaultCancelLabel
	}
	return p
}

// Bool returns a pointer to v for the optional Request flags.
func Bool(v bool) *bool {
	return &v
}

package shell

// Prompt is the modal yes/no logout dialog of the terminal shell. Confirm
// only opens it; the answer arrives later through Accept, Reject or Submit
// as the event loop handles keys. The focused button starts on "No".
type Prompt struct {
	Question string

	resolve func(bool)
	yes     bool
}

var _ LogoutFlow = (*Prompt)(nil)

// NewPrompt builds a closed prompt.
func NewPrompt(question string) *Prompt {
	if question == "" {
		question = "Log out?"
	}
	return &Prompt{Question: question}
}

// Confirm opens the dialog. A second Confirm while open rejects the first
// request.
func (p *Prompt) Confirm(resolve func(accepted bool)) {
	if p.resolve != nil {
		p.answer(false)
	}
	p.resolve = resolve
	p.yes = false
}

// Open reports whether the dialog awaits an answer.
func (p *Prompt) Open() bool {
	return p.resolve != nil
}

// YesFocused reports whether Submit would accept.
func (p *Prompt) YesFocused() bool {
	return p.yes
}

// Toggle moves focus to the other button.
func (p *Prompt) Toggle() {
	if p.Open() {
		p.yes = !p.yes
	}
}

// Focus moves focus to the given button.
func (p *Prompt) Focus(yes bool) {
	if p.Open() {
		p.yes = yes
	}
}

// Submit answers with the focused button.
func (p *Prompt) Submit() {
	p.answer(p.yes)
}

// Accept answers yes.
func (p *Prompt) Accept() {
	p.answer(true)
}

// Reject answers no. Closing the dialog any other way also rejects.
func (p *Prompt) Reject() {
	p.answer(false)
}

func (p *Prompt) answer(accepted bool) {
	resolve := p.resolve
	if resolve == nil {
		return
	}
	p.resolve = nil
	p.yes = false
	resolve(accepted)
}

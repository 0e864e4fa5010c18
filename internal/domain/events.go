package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSuggestionsRequested EventType = "SuggestionsRequested"
	EventSuggestionsRendered  EventType = "SuggestionsRendered"
	EventSuggestionsDiscarded EventType = "SuggestionsDiscarded"
	EventSuggestionsFailed    EventType = "SuggestionsFailed"
	EventSuggestionCommitted  EventType = "SuggestionCommitted"
	EventDropdownClosed       EventType = "DropdownClosed"
	EventValidationFailed     EventType = "ValidationFailed"
	EventFormSubmitted        EventType = "FormSubmitted"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SuggestionsRequestedEvent is emitted when a debounced fetch fires
type SuggestionsRequestedEvent struct {
	Query string
	Token uint64
}

func (e SuggestionsRequestedEvent) Type() EventType { return EventSuggestionsRequested }

// SuggestionsRenderedEvent is emitted when a fetch result reaches the dropdown
type SuggestionsRenderedEvent struct {
	Query string
	Token uint64
	Count int
}

func (e SuggestionsRenderedEvent) Type() EventType { return EventSuggestionsRendered }

// SuggestionsDiscardedEvent is emitted when a response lost the race to a newer query
type SuggestionsDiscardedEvent struct {
	Query string
	Token uint64
}

func (e SuggestionsDiscardedEvent) Type() EventType { return EventSuggestionsDiscarded }

// SuggestionsFailedEvent is emitted when the current fetch failed
type SuggestionsFailedEvent struct {
	Query string
	Token uint64
	Err   error
}

func (e SuggestionsFailedEvent) Type() EventType { return EventSuggestionsFailed }

// SuggestionCommittedEvent is emitted when an entry is chosen.
// Value is empty when the free-text fallback was picked.
type SuggestionCommittedEvent struct {
	Value    string
	FreeText bool
}

func (e SuggestionCommittedEvent) Type() EventType { return EventSuggestionCommitted }

// DropdownClosedEvent is emitted when the dropdown is hidden
type DropdownClosedEvent struct {
	Reason string
}

func (e DropdownClosedEvent) Type() EventType { return EventDropdownClosed }

// ValidationFailedEvent is emitted when a submit attempt is rejected
type ValidationFailedEvent struct {
	Message string
}

func (e ValidationFailedEvent) Type() EventType { return EventValidationFailed }

// FormSubmittedEvent is emitted when the form passes validation
type FormSubmittedEvent struct {
	Submission Submission
}

func (e FormSubmittedEvent) Type() EventType { return EventFormSubmitted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Endpoint string
	Offline  bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

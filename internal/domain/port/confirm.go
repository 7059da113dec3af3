package port

// Confirmer asks the user a yes/no question before any destructive step.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

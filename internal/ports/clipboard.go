package ports

// Clipboard places text where the operator can paste it
type Clipboard interface {
	WriteText(text string) error
}

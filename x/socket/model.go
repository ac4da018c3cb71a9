package socket

// Event is pushed to every connected listener when a character mutates.
// Only create carries the full field set.
type Event struct {
	Action    string `json:"action"`
	Name      string `json:"name"`
	Faceclaim string `json:"faceclaim,omitempty"`
	Image     string `json:"image,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

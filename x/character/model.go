package character

// CreateRequest carries every field of a new character. All fields are
// required; validation happens at the command boundary before this is built.
type CreateRequest struct {
	Name      string
	Faceclaim string
	Image     string
	Bio       string
	Password  string
}

// UpdateRequest carries a partial update. A nil field keeps the stored value.
type UpdateRequest struct {
	Name      string
	Password  string
	Faceclaim *string
	Image     *string
	Bio       *string
}

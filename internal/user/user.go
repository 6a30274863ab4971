package user

// User is a directory entry. DateOfBirth is a plain YYYY-MM-DD string and
// ProfilePicture is an externally hosted image URL; the server stores both
// verbatim. Followers/Following carry the id+name annotation sets returned
// by list and detail endpoints.
type User struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	DateOfBirth    *string `json:"dateOfBirth"`
	ProfilePicture *string `json:"profilePicture"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`

	Followers []Ref `json:"Followers"`
	Following []Ref `json:"Following"`
}

// Ref is the trimmed user reference used inside Followers/Following sets.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Update carries a partial field set for PUT /users/:id. A nil field was
// absent from the request body and must be left unchanged.
type Update struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	DateOfBirth    *string `json:"dateOfBirth"`
	ProfilePicture *string `json:"profilePicture"`
}

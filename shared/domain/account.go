package domain

// Account is one registered user. Email is the unique identity key and is
// compared exactly: no trimming, no case folding.
//
// Password is stored and compared verbatim. This models the observed
// behavior of a single-device demo store, not an identity system.
type Account struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SignupCandidate carries the four signup form fields. All must be non-empty.
type SignupCandidate struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

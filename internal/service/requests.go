package service

// Request types carry the declarative schemas enforced by the
// validation gate. Every field a schema does not declare is rejected
// at the JSON boundary, so these structs are the closed shape of each
// operation's input.

// RegisterUserRequest is the payload for user registration.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name"     validate:"required,max=100"`
}

// LoginUserRequest is the payload for user login.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest is the payload for updating the current user.
// Username is taken from the authenticated identity, never the body.
// Name and Password are each optional; only the fields present are
// applied (partial merge, unlike the contact/address full replace).
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}

// CreateContactRequest is the payload for creating a contact.
type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Email     string `json:"email"      validate:"omitempty,email,max=200"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
}

// UpdateContactRequest is the payload for a full-replace contact
// update. All four fields are applied unconditionally.
type UpdateContactRequest struct {
	ID        int64  `json:"id"         validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Email     string `json:"email"      validate:"omitempty,email,max=200"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
}

// SearchContactRequest is the payload for a contact search. Absent
// paging parameters receive their defaults before validation runs.
type SearchContactRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Page  int    `json:"page"  validate:"gte=1"`
	Size  int    `json:"size"  validate:"gte=1,lte=100"`
}

// Normalize applies the search paging defaults: page=1, size=10.
func (r *SearchContactRequest) Normalize() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = 10
	}
}

// CreateAddressRequest is the payload for creating an address under a
// contact. Country and postal code are required; the rest is optional.
type CreateAddressRequest struct {
	Street     string `json:"street"      validate:"omitempty,max=255"`
	City       string `json:"city"        validate:"omitempty,max=100"`
	Province   string `json:"province"    validate:"omitempty,max=100"`
	Country    string `json:"country"     validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// UpdateAddressRequest is the payload for a full-replace address update.
type UpdateAddressRequest struct {
	ID         int64  `json:"id"          validate:"required,gt=0"`
	Street     string `json:"street"      validate:"omitempty,max=255"`
	City       string `json:"city"        validate:"omitempty,max=100"`
	Province   string `json:"province"    validate:"omitempty,max=100"`
	Country    string `json:"country"     validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// identifier applies the positive-integer rule to path-derived ids.
type identifier struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// principal applies the username schema to identity values that arrive
// outside a request body (path, auth context).
type principal struct {
	Username string `json:"username" validate:"required,max=100"`
}

// Paging is the metadata returned alongside a search result page.
type Paging struct {
	Page      int   `json:"page"`
	TotalItem int64 `json:"total_item"`
	TotalPage int64 `json:"total_page"`
}

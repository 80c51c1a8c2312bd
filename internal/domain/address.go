package domain

// Address is owned by exactly one Contact. Every address operation
// first re-proves the parent contact's ownership, then matches the
// address by id AND contact_id; an address under another contact is
// treated as not found.
type Address struct {
	ID         int64  `json:"id"`
	ContactID  int64  `json:"-"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

package api

import "github.com/rayzor/contacts-api/internal/domain"

// Response projections. Each names exactly the fields an operation
// returns; fields the schema did not select (owner, password hash,
// token) never appear here.

// UserResponse is the public projection of a user.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse carries the opaque session token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ContactResponse is the public projection of a contact.
type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressResponse is the public projection of an address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

func toContactResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func toContactResponses(contacts []*domain.Contact) []ContactResponse {
	responses := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, toContactResponse(contact))
	}
	return responses
}

func toAddressResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

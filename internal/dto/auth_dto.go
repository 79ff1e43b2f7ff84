package dto

// LoginRequest carries the combined login/register payload. Pointer
// fields distinguish "absent" from zero values; the registration path
// reports the first missing required field by name.
type LoginRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Address   *string `json:"address"`
	PhoneNo   *int64  `json:"phone_no"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	PinCode   *int64  `json:"pin_code"`
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse flattens the user identity into the profile payload;
// its id is the owning user's id.
type ProfileResponse struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	PhoneNo   int64  `json:"phone_no"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	PinCode   int64  `json:"pin_code"`
}

type AuthResult struct {
	Token   string
	Profile ProfileResponse
}

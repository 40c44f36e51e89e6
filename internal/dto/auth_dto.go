package dto

type SignUpRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"d_o_b" validate:"required"`
	ContactNo   string `json:"contact_no" validate:"required"`
	WhatsappNo  string `json:"whatsapp_no"`
	Religion    string `json:"religion"`
	Caste       string `json:"cast"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Id       string `json:"id"`
	MemberId string `json:"member_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type OAuthURLResponse struct {
	URL string `json:"url"`
}

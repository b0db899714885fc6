package handler

// Response envelopes mirror the contract the frontend already depends on:
// a boolean flag (Status / loginStatus / success) plus Result, Error or
// Message. Record routes answer 200 with the flag embedded; profile and
// verify use real HTTP status codes.

type statusResponse struct {
	Status  bool   `json:"Status"`
	Result  any    `json:"Result,omitempty"`
	Error   string `json:"Error,omitempty"`
	Message string `json:"Message,omitempty"`
}

type loginResponse struct {
	LoginStatus bool   `json:"loginStatus"`
	Error       string `json:"Error,omitempty"`
}

type signupResponse struct {
	Status  bool   `json:"Status"`
	Message string `json:"Message,omitempty"`
	Error   string `json:"Error,omitempty"`
	ID      string `json:"id,omitempty"`
	Role    string `json:"role,omitempty"`
}

type listResponse struct {
	Status     bool   `json:"Status"`
	Result     any    `json:"Result,omitempty"`
	Error      string `json:"Error,omitempty"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

type verifyResponse struct {
	Status bool   `json:"Status"`
	Role   string `json:"role"`
	ID     string `json:"id"`
}

type profileResponse struct {
	Success bool   `json:"success"`
	User    any    `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminSignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type addCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

type editCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

type employeeSignupRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=4"`
	Salary   float64 `json:"salary"`
	Address  string  `json:"address"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

type editEmployeeRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Salary   float64 `json:"salary"`
	Address  string  `json:"address"`
	Category string  `json:"category"`
	Password string  `json:"password"`
}

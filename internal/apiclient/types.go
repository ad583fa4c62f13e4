package apiclient

import "github.com/zaqqye/navodaya_web/internal/models"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MessageResponse is the acknowledgement body of delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// CompanyUpdate is a partial update; nil fields are left untouched.
type CompanyUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Tagline     *string             `json:"tagline,omitempty"`
	Subline     *string             `json:"subline,omitempty"`
	Description *string             `json:"description,omitempty"`
	Mission     *string             `json:"mission,omitempty"`
	Phone       *string             `json:"phone,omitempty"`
	Email       *string             `json:"email,omitempty"`
	Address     *string             `json:"address,omitempty"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	MapLink     *string             `json:"mapLink,omitempty"`
	Logo        *string             `json:"logo,omitempty"`
}

type ServiceInput struct {
	Category        string             `json:"category"`
	Icon            models.ServiceIcon `json:"icon"`
	Description     string             `json:"description"`
	Features        []string           `json:"features"`
	DetailedContent *string            `json:"detailedContent,omitempty"`
}

type ServiceUpdate struct {
	Category        *string             `json:"category,omitempty"`
	Icon            *models.ServiceIcon `json:"icon,omitempty"`
	Description     *string             `json:"description,omitempty"`
	Features        []string            `json:"features,omitempty"`
	DetailedContent *string             `json:"detailedContent,omitempty"`
}

type ProjectInput struct {
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Year            string   `json:"year"`
	Image           string   `json:"image"`
	DetailedContent *string  `json:"detailedContent,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
}

type ProjectUpdate struct {
	Title           *string  `json:"title,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Year            *string  `json:"year,omitempty"`
	Image           *string  `json:"image,omitempty"`
	DetailedContent *string  `json:"detailedContent,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
}

package site

import (
	"context"
	"log"
	"strings"

	"github.com/zaqqye/navodaya_web/internal/apiclient"
	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/toast"
)

type ContactAPI interface {
	SubmitContactForm(ctx context.Context, req apiclient.ContactRequest) (*apiclient.Response[models.ContactMessage], error)
}

// ContactForm mirrors the public contact form fields.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Missing lists the required fields that are blank.
func (f *ContactForm) Missing() []string {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}

func (f *ContactForm) Reset() {
	*f = ContactForm{}
}

// Submit sends the form once. On success the fields are cleared; on failure
// they are kept so the visitor can retry.
func (f *ContactForm) Submit(ctx context.Context, api ContactAPI) toast.Toast {
	if missing := f.Missing(); len(missing) > 0 {
		return toast.Error("Error", "Please fill in: "+strings.Join(missing, ", "))
	}

	_, err := api.SubmitContactForm(ctx, apiclient.ContactRequest{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	})
	if err != nil {
		log.Printf("Error submitting form: %v", err)
		return toast.Error("Error", "Failed to send message. Please try again.")
	}

	f.Reset()
	return toast.Info("Message Sent!", "Thank you for contacting us. We'll get back to you soon.")
}

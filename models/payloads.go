package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks a write payload and returns one FieldError per
// failing field, or nil when the payload is acceptable.
func Validate(payload any) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "invalid payload"}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, FieldError{Field: e.Field(), Message: message(e)})
	}
	return fields
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return "invalid value"
	}
}

// EventInfoIn is the upsert payload for the EventInfo singleton.
type EventInfoIn struct {
	Name      string            `json:"name" validate:"required"`
	Tagline   string            `json:"tagline"`
	DateISO   string            `json:"date_iso" validate:"required"`
	Venue     string            `json:"venue" validate:"required"`
	Address   string            `json:"address" validate:"required"`
	City      string            `json:"city" validate:"required"`
	Country   string            `json:"country" validate:"required"`
	TicketURL string            `json:"ticket_url" validate:"omitempty,url"`
	Socials   map[string]string `json:"socials"`
}

func (p EventInfoIn) Document() EventInfo {
	socials := p.Socials
	if socials == nil {
		socials = map[string]string{}
	}
	return EventInfo{
		Name:      p.Name,
		Tagline:   p.Tagline,
		DateISO:   p.DateISO,
		Venue:     p.Venue,
		Address:   p.Address,
		City:      p.City,
		Country:   p.Country,
		TicketURL: p.TicketURL,
		Socials:   socials,
	}
}

// ApplicationIn is the creator-application payload. It carries no
// status field: every new application is stored as "submitted" no
// matter what the caller sends.
type ApplicationIn struct {
	Name       string `json:"name" validate:"required"`
	Discipline string `json:"discipline" validate:"required,oneof=DJ 'Live Band' 'Visual Artist' Performer Other"`
	Portfolio  string `json:"portfolio"`
	Bio        string `json:"bio"`
	Instagram  string `json:"instagram"`
	TikTok     string `json:"tiktok"`
	Twitter    string `json:"twitter"`
	Email      string `json:"email" validate:"required,email"`
}

func (p ApplicationIn) Document() Application {
	return Application{
		Name:       p.Name,
		Discipline: p.Discipline,
		Portfolio:  p.Portfolio,
		Bio:        p.Bio,
		Instagram:  p.Instagram,
		TikTok:     p.TikTok,
		Twitter:    p.Twitter,
		Email:      p.Email,
		Status:     StatusSubmitted,
	}
}

// NewsletterIn is the signup payload. Source is not caller-settable;
// signups through this API are always attributed to the website.
type NewsletterIn struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func (p NewsletterIn) Document() Newsletter {
	return Newsletter{
		Email:  p.Email,
		Name:   p.Name,
		Source: SourceWebsite,
	}
}

package usecase

import (
	"net/url"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
)

// guardianFields is a validated, normalized GuardianInput
type guardianFields struct {
	name     string
	phone    string
	relation string
	priority models.Priority
	photoURL string
}

func validateGuardianInput(input *models.GuardianInput) (*guardianFields, error) {
	if input == nil {
		return nil, models.NewValidationError("body", "guardian input is required")
	}

	f := &guardianFields{
		name:     strings.TrimSpace(input.Name),
		relation: strings.TrimSpace(input.Relation),
		photoURL: strings.TrimSpace(input.PhotoURL),
		priority: models.PriorityDefault,
	}

	if n := utils.RuneLen(f.name); n < 2 || n > 50 {
		return nil, models.NewValidationError("name", "must be between 2 and 50 characters")
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" || !utils.IsValidPhoneNumber(phone) {
		return nil, models.NewValidationError("phone", "invalid phone number format")
	}
	f.phone = utils.NormalizePhone(phone)

	if n := utils.RuneLen(f.relation); n < 2 || n > 30 {
		return nil, models.NewValidationError("relation", "must be between 2 and 30 characters")
	}

	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, models.NewValidationError("priority", "must be between 1 and 5")
		}
		f.priority = *input.Priority
	}

	if f.photoURL != "" && !isAbsoluteURL(f.photoURL) {
		return nil, models.NewValidationError("photo_url", "must be an absolute http(s) URL")
	}

	return f, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

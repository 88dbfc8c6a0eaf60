package bookingService

import (
	"errors"
	"fmt"
	"strings"

	"reinvent/models"
	"reinvent/services/serverrors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GuestProfile is the typed client payload of a guest checkout.
type GuestProfile struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Position string
}

// ResolvedUser tags whether the identity already existed or was created.
type ResolvedUser struct {
	User    models.User
	Created bool
}

// ResolveOrCreateUser finds a user by the guest's email or creates one.
// Creation derives the username from the email local-part, disambiguating
// collisions with an incrementing numeric suffix, and stores a placeholder
// credential: password login does not work until the user resets it.
func (s *Service) ResolveOrCreateUser(profile GuestProfile) (*ResolvedUser, error) {
	return resolveOrCreateUser(s.db, profile)
}

func resolveOrCreateUser(tx *gorm.DB, profile GuestProfile) (*ResolvedUser, error) {
	if profile.Email == "" || profile.Name == "" {
		return nil, fmt.Errorf("client_name and client_email are required: %w", serverrors.ErrValidation)
	}

	var user models.User
	err := tx.Where("email = ?", profile.Email).First(&user).Error
	if err == nil {
		return &ResolvedUser{User: user, Created: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	firstName, lastName := splitName(profile.Name)

	username, err := uniqueUsername(tx, usernameFromEmail(profile.Email))
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("temp_password_123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Company:   profile.Company,
		Position:  profile.Position,
		Password:  string(hashedPassword),
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}

	return &ResolvedUser{User: user, Created: true}, nil
}

// resolveBookingUser maps booking input to a user id, creating the guest's
// account when needed.
func resolveBookingUser(tx *gorm.DB, in CreateBookingInput) (uint, error) {
	if in.UserID != nil {
		var user models.User
		if err := tx.Where("id = ? AND is_deleted = false", *in.UserID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("user %d: %w", *in.UserID, serverrors.ErrNotFound)
			}
			return 0, err
		}
		return user.ID, nil
	}

	resolved, err := resolveOrCreateUser(tx, *in.Guest)
	if err != nil {
		return 0, err
	}
	return resolved.User.ID, nil
}

// splitName splits on the first whitespace boundary: first token becomes the
// first name, the remainder the last name.
func splitName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// uniqueUsername appends 1, 2, ... to the base until the username is free.
func uniqueUsername(tx *gorm.DB, base string) (string, error) {
	username := base
	for counter := 1; ; counter++ {
		var existing models.User
		err := tx.Where("username = ?", username).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return username, nil
		}
		if err != nil {
			return "", err
		}
		username = fmt.Sprintf("%s%d", base, counter)
	}
}

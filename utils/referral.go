package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReferralCode creates a short unique code a realtor shares with
// prospective downlines. Uniqueness is enforced by the users table index;
// callers retry on the rare collision.
func GenerateReferralCode() string {
	id := uuid.New().String()
	return "RN-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

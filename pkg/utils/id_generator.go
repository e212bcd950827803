package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateID generates a new UUID for applications and vendors
func GenerateID() string {
	return uuid.New().String()
}

// GenerateOrderedID generates a time-ordered UUIDv7. Ids issued later in the
// process sort after earlier ones, so they break created_at ties by insertion order.
func GenerateOrderedID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// GenerateApplicationNumber builds the human readable application number:
// "APP" followed by the last 8 digits of the Unix millisecond clock
func GenerateApplicationNumber(now time.Time) string {
	return fmt.Sprintf("APP%08d", TimeToMillis(now)%100000000)
}

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

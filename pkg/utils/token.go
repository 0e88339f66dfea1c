package utils

import "github.com/google/uuid"

// GenerateToken returns a fresh unique token, used to keep image
// filenames from colliding across repeated saves for the same owner
func GenerateToken() string {
	return uuid.New().String()
}

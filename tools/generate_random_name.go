package tools

import (
	"github.com/google/uuid"
)

// Generates a random client id using UUID
func GenerateClientId() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

package utils

import (
	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.NewString()
}

func IsValidUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

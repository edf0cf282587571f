package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	recordIDPrefix = "rec_"
	recordIDLength = 12
)

// GenerateID gera o ID curto dos registros de analytics (rec_ + 12 caracteres)
func GenerateID() (string, error) {
	id, err := gonanoid.Generate(characters, recordIDLength)
	if err != nil {
		return "", err
	}
	return recordIDPrefix + id, nil
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID cria o identificador curto usado em scores e decisões.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

package main

// APIError is returned for request bodies that fail validation.
type APIError string

func (e APIError) Error() string {
	return string(e)
}

const (
	ErrInvalidFormat    APIError = "Formato de datos inválido"
	ErrIncompletePlayer APIError = "Datos del jugador incompletos"
)

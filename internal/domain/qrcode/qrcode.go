package qrcode

//go:generate mockgen -destination=../../mocks/qrcode.go -package=mocks . Generator

// Generator renders content as a PNG QR code.
type Generator interface {
	Generate(content string) ([]byte, error)
}

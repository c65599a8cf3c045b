package output

import (
	"io"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"rsc.io/qr"
)

// QRConfig configures terminal QR rendering.
type QRConfig struct {
	// Level is the error correction level.
	Level qr.Level
	// QuietZone is the number of empty blocks around the code.
	QuietZone int
	// HalfBlocks packs two rows per line for a more compact code.
	HalfBlocks bool
}

// DefaultQRConfig returns the terminal defaults: low error correction,
// one block of quiet zone, half-height blocks.
func DefaultQRConfig() QRConfig {
	return QRConfig{
		Level:      qr.L,
		QuietZone:  1,
		HalfBlocks: true,
	}
}

// ParseQRLevel maps "L", "M", "Q" or "H" to a correction level.
// Anything else is L.
func ParseQRLevel(s string) qr.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return qr.M
	case "Q":
		return qr.Q
	case "H":
		return qr.H
	default:
		return qr.L
	}
}

// CanRenderQR reports whether w is a terminal that can show a QR code.
func CanRenderQR(w io.Writer) bool {
	return IsTerminal(w)
}

// RenderQR draws data as a QR code when w is a terminal and writes nothing
// otherwise.
func RenderQR(w io.Writer, data string, cfg QRConfig) error {
	if !CanRenderQR(w) {
		return nil
	}
	return DrawQR(w, data, cfg)
}

// DrawQR draws data as a QR code regardless of what w is.
func DrawQR(w io.Writer, data string, cfg QRConfig) error {
	if _, err := qr.Encode(data, cfg.Level); err != nil {
		return err
	}

	config := qrterminal.Config{
		Level:          cfg.Level,
		Writer:         w,
		QuietZone:      cfg.QuietZone,
		HalfBlocks:     cfg.HalfBlocks,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
	}
	if !cfg.HalfBlocks {
		config.BlackChar = qrterminal.BLACK
		config.WhiteChar = qrterminal.WHITE
	}

	qrterminal.GenerateWithConfig(data, config)
	return nil
}

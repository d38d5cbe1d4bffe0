// Package gst utilidades fiscales del recibo: validación de GSTIN y código de verificación.
package gst

import (
	"fmt"
	"regexp"
	"strings"
)

const gstinAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// estado (2) + PAN (10) + entidad (1) + 'Z' + checksum (1)
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// NormalizeGSTIN quita espacios y guiones y pasa a mayúsculas.
func NormalizeGSTIN(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

// ValidateGSTIN valida formato y dígito de control (módulo 36) de un GSTIN.
func ValidateGSTIN(gstin string) error {
	g := NormalizeGSTIN(gstin)
	if len(g) != 15 {
		return fmt.Errorf("gst: GSTIN debe tener 15 caracteres, se recibieron %d", len(g))
	}
	if !gstinPattern.MatchString(g) {
		return fmt.Errorf("gst: GSTIN con formato inválido: %s", g)
	}
	expected, err := ComputeGSTINChecksum(g[:14])
	if err != nil {
		return err
	}
	if g[14] != expected {
		return fmt.Errorf("gst: dígito de control del GSTIN inválido: esperado %c, recibido %c", expected, g[14])
	}
	return nil
}

// ComputeGSTINChecksum calcula el carácter de control para los 14 primeros caracteres.
// Pesos alternos 1 y 2; cada producto aporta cociente + resto en base 36.
func ComputeGSTINChecksum(base string) (byte, error) {
	base = NormalizeGSTIN(base)
	if len(base) < 14 {
		return 0, fmt.Errorf("gst: se requieren 14 caracteres para el dígito de control, se recibieron %d", len(base))
	}
	var sum int
	for i := 0; i < 14; i++ {
		v := strings.IndexByte(gstinAlphabet, base[i])
		if v < 0 {
			return 0, fmt.Errorf("gst: carácter inválido %q en la posición %d", base[i], i+1)
		}
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		p := v * factor
		sum += p/36 + p%36
	}
	return gstinAlphabet[(36-sum%36)%36], nil
}

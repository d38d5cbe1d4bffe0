// seed_plans genera el script SQL que carga el catálogo de pases
// a partir de un CSV exportado desde la hoja de precios (ISO-8859-1, separador ';').
//
// Uso: go run ./cmd/seed_plans [ruta/planes.csv]
// Por defecto lee plans.csv del directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_plans.sql
//
// Columnas: nombre;descripción;lavados;días de vigencia;precio sin GST[;activo]
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// planNamespace deriva IDs estables por nombre; volver a generar el script no duplica planes.
var planNamespace = uuid.MustParse("6f1c3a52-8f0e-4c3e-9b61-2d7f0e5a9c11")

type plan struct {
	ID           string
	Name         string
	Description  string
	Washes       int
	ValidityDays int
	Price        decimal.Decimal
	Active       bool
}

func main() {
	csvPath := "plans.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	plans, err := parsePlans(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer planes: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_plans.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, plans); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d planes\n", outPath, len(plans))
}

// parsePlans lee el CSV ya decodificado a UTF-8. La primera fila es el encabezado.
func parsePlans(r io.Reader) ([]plan, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var plans []plan
	seen := make(map[string]bool)
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			continue
		}
		if len(rec) < 5 {
			return nil, fmt.Errorf("línea %d: se esperan al menos 5 columnas", line)
		}
		p := plan{
			Name:        strings.TrimSpace(rec[0]),
			Description: strings.TrimSpace(rec[1]),
			Active:      true,
		}
		if p.Name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", line)
		}
		if seen[strings.ToLower(p.Name)] {
			return nil, fmt.Errorf("línea %d: plan %q repetido", line, p.Name)
		}
		seen[strings.ToLower(p.Name)] = true

		if p.Washes, err = strconv.Atoi(strings.TrimSpace(rec[2])); err != nil || p.Washes <= 0 {
			return nil, fmt.Errorf("línea %d: lavados inválidos %q", line, rec[2])
		}
		if p.ValidityDays, err = strconv.Atoi(strings.TrimSpace(rec[3])); err != nil || p.ValidityDays <= 0 {
			return nil, fmt.Errorf("línea %d: vigencia inválida %q", line, rec[3])
		}
		// Admite coma decimal ("1499,50").
		price := strings.ReplaceAll(strings.TrimSpace(rec[4]), ",", ".")
		if p.Price, err = decimal.NewFromString(price); err != nil || p.Price.IsNegative() {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, rec[4])
		}
		if len(rec) > 5 && strings.TrimSpace(rec[5]) != "" {
			if p.Active, err = strconv.ParseBool(strings.TrimSpace(rec[5])); err != nil {
				return nil, fmt.Errorf("línea %d: activo inválido %q", line, rec[5])
			}
		}
		p.ID = uuid.NewSHA1(planNamespace, []byte(strings.ToLower(p.Name))).String()
		plans = append(plans, p)
	}
	return plans, nil
}

func writeSQL(w io.Writer, plans []plan) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de pases de lavado\n")
	b.WriteString("-- Generado por cmd/seed_plans\n\n")
	if len(plans) == 0 {
		b.WriteString("-- (sin planes)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("INSERT INTO pass_plans (id, name, description, washes, validity_days, price, active) VALUES\n")
	for i, p := range plans {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %d, %d, %s, %t)",
			p.ID, escapeSQL(p.Name), escapeSQL(p.Description), p.Washes, p.ValidityDays, p.Price.StringFixed(2), p.Active)
		if i < len(plans)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (name) DO UPDATE SET\n")
	b.WriteString("  description = EXCLUDED.description,\n")
	b.WriteString("  washes = EXCLUDED.washes,\n")
	b.WriteString("  validity_days = EXCLUDED.validity_days,\n")
	b.WriteString("  price = EXCLUDED.price,\n")
	b.WriteString("  active = EXCLUDED.active;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParsePlans_Latin1(t *testing.T) {
	// "Lavado básico" en ISO-8859-1: á = 0xE1
	raw := []byte("nombre;descripcion;lavados;dias;precio\nBasic;Lavado b\xe1sico;4;30;999,50\nGold;Todo incluido;10;90;2000;false\n")

	plans, err := parsePlans(transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "Lavado básico", plans[0].Description)
	assert.Equal(t, "999.50", plans[0].Price.StringFixed(2))
	assert.True(t, plans[0].Active)
	assert.False(t, plans[1].Active)
	assert.Equal(t, 10, plans[1].Washes)
}

func TestParsePlans_IDsEstables(t *testing.T) {
	a, err := parsePlans(strings.NewReader("h\nGold;x;10;90;2000\n"))
	require.NoError(t, err)
	b, err := parsePlans(strings.NewReader("h\ngold;y;5;30;100\n"))
	require.NoError(t, err)
	assert.Equal(t, a[0].ID, b[0].ID)
}

func TestParsePlans_Errores(t *testing.T) {
	cases := map[string]string{
		"columnas": "h\nGold;x;10\n",
		"lavados":  "h\nGold;x;0;90;2000\n",
		"vigencia": "h\nGold;x;10;abc;2000\n",
		"precio":   "h\nGold;x;10;90;-1\n",
		"repetido": "h\nGold;x;10;90;1\ngold;y;1;1;1\n",
		"nombre":   "h\n ;x;10;90;1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parsePlans(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestWriteSQL(t *testing.T) {
	plans, err := parsePlans(strings.NewReader("h\nO'Brien Wash;x;1;7;150\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeSQL(&out, plans))
	sql := out.String()
	assert.Contains(t, sql, "'O''Brien Wash'")
	assert.Contains(t, sql, "150.00, true)")
	assert.Contains(t, sql, "ON CONFLICT (name) DO UPDATE")
}

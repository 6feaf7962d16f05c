package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteCatalog_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, domain.DefaultCatalog(), "table"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "ITEM")
	assert.Contains(t, lines[2], "Coca-Cola")
	assert.Contains(t, lines[2], "$5.00")
}

func TestWriteCatalog_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, domain.DefaultCatalog(), "json"))

	var rows []catalogRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, catalogRow{Item: "doritos", Name: "Doritos", Quantity: 1, Price: "2.50"}, rows[2])
}

func TestWriteCatalog_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, domain.DefaultCatalog(), "yaml"))

	var rows []catalogRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "sprite", rows[0].Item)
	assert.Equal(t, "3.50", rows[0].Price)
}

func TestWriteCatalog_UnknownFormat(t *testing.T) {
	assert.Error(t, writeCatalog(&bytes.Buffer{}, nil, "xml"))
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"version", []string{"version"}, "vending version 0.3.0"},
		{"graph", []string{"graph", "--highlight", "directive"}, "class directive current;"},
		{"catalog", []string{"catalog", "-f", "json"}, `"name": "Snickers"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs(tt.args)
			require.NoError(t, rootCmd.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunCommand_Scripted(t *testing.T) {
	chdir(t, t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("1\nshekels\n20\nsnickers\nexit\n3\n"))
	rootCmd.SetArgs([]string{"run", "--headless"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "-->Inserted $5.80 Dollars")
	assert.Contains(t, out.String(), "You bought Snickers for $2.00. Your change is $3.80.")
}

// chdir is a go1.21 stand-in for testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"category,name,quantity,description,unit_cost,extra",
		`Shredder,Hammer,24,"Manganese hammer, 300lb",410.00,x`,
		"Conveyor 1,Idler,12,,,",
		",,",
		"Conveyor 2,Belt",
	}, "\n")

	parts, err := NewLoader().Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, "Hammer", parts[0].Name)
	assert.Equal(t, "Shredder", parts[0].Category)
	assert.Equal(t, "24", parts[0].Quantity)
	assert.Equal(t, "Manganese hammer, 300lb", parts[0].Description)
	assert.Equal(t, "410.00", parts[0].UnitCost)
	assert.Empty(t, parts[1].Description)
	assert.Empty(t, parts[2].Quantity)
}

func TestLoadRejectsMissingColumns(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(strings.NewReader("name,quantity\nHammer,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")

	_, err = NewLoader().Load(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "parts.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffName,Category\nMotor,Conveyor 4\n"), 0o600))

	parts, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "Motor", parts[0].Name)

	_, err = NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

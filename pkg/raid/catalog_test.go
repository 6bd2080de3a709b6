package raid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/latehour/loahelper/pkg/raid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
raids:
  - name: 발탄
    difficulties:
      - difficulty: normal
        min_item_level: 1415
        gates:
          - gate: 1
            gold: 500
          - gate: 2
            gold: 700
      - difficulty: hard
        min_item_level: 1445
        gates:
          - gate: 1
            gold: 700
          - gate: 2
            gold: 1100
  - name: 카멘
    difficulties:
      - difficulty: normal
        min_item_level: 1610
        gates:
          - gate: 1
            gold: 3500
`

func loadTestCatalog(t *testing.T) *raid.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "raids.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	catalog, err := raid.LoadCatalog(path)
	require.NoError(t, err)
	return catalog
}

func TestLoadCatalog(t *testing.T) {
	catalog := loadTestCatalog(t)

	require.Len(t, catalog.Raids, 2)
	assert.Equal(t, []string{"발탄", "카멘"}, catalog.Names())
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := raid.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFindMatchesCaseInsensitively(t *testing.T) {
	catalog := loadTestCatalog(t)

	entry := catalog.Find("발탄", "HARD")
	require.NotNil(t, entry)
	assert.Equal(t, 1445, entry.MinItemLevel)

	assert.Nil(t, catalog.Find("발탄", "inferno"))
	assert.Nil(t, catalog.Find("없는레이드", "normal"))
}

func TestTotalGoldSumsGates(t *testing.T) {
	catalog := loadTestCatalog(t)

	normal := catalog.Find("발탄", "normal")
	require.NotNil(t, normal)
	assert.Equal(t, 1200, normal.TotalGold())

	kamen := catalog.Find("카멘", "normal")
	require.NotNil(t, kamen)
	assert.Equal(t, 3500, kamen.TotalGold())
}

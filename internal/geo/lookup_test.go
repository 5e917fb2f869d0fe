package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	lookup, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, int64(13010112), lookup.RegionPopulation("77"))
	assert.Equal(t, int64(113166), lookup.CityPopulation("78", "Пушкин"))
	assert.Equal(t, int64(141970), lookup.CityPopulation("01", "Майкоп"))
	assert.NotZero(t, lookup.FederalDistrictPopulation("Центральный"))
}

func TestLookup_CaseInsensitiveCityMatch(t *testing.T) {
	lookup, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, lookup.CityPopulation("02", "Уфа"), lookup.CityPopulation("02", "УФА"))
	assert.NotZero(t, lookup.CityPopulation("02", "уфа"))
}

func TestLookup_UnknownResolvesToZero(t *testing.T) {
	lookup, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Zero(t, lookup.RegionPopulation("00"))
	assert.Zero(t, lookup.CityPopulation("77", "Нигдеград"))
	assert.Zero(t, lookup.CityPopulation("00", "Москва"))
	assert.Zero(t, lookup.FederalDistrictPopulation("Лунный"))
}

func TestLookup_RegionPopulationDerivedFromSettlements(t *testing.T) {
	data := Dataset{FederalDistricts: []FederalDistrict{{
		Name: "Тестовый",
		Regions: []Region{{
			ID:   "97",
			Name: "Тестовая область",
			Cities: []Settlement{
				{Name: "Город А", Population: 1000},
				{Name: "Город Б", Population: 500},
			},
			UrbanDistricts: []UrbanDistrict{{
				Name:        "Округ",
				Settlements: []Settlement{{Name: "Село В", Population: 50}},
			}},
		}},
	}}}

	lookup := NewLookup(data)
	assert.Equal(t, int64(1550), lookup.RegionPopulation("97"))
	assert.Equal(t, int64(1550), lookup.FederalDistrictPopulation("Тестовый"))
	assert.Equal(t, int64(50), lookup.CityPopulation("97", "Село В"))
}

func TestLookup_StoredAggregateFallback(t *testing.T) {
	data := Dataset{FederalDistricts: []FederalDistrict{{
		Name:       "Тестовый",
		Population: 9000,
		Regions: []Region{{
			ID:         "98",
			Name:       "Без городов",
			Population: 4000,
		}},
	}}}

	lookup := NewLookup(data)
	assert.Equal(t, int64(4000), lookup.RegionPopulation("98"))
	assert.Equal(t, int64(4000), lookup.FederalDistrictPopulation("Тестовый"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geo.json")
	payload := `{"federal_districts":[{"name":"Тестовый","regions":[{"id":"97","name":"Тестовая область","cities":[{"name":"Город А","population":1000}]}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	lookup, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), lookup.RegionPopulation("97"))

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"federal_districts":[]}`), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err, "empty dataset is rejected")
}

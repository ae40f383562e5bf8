package service

import (
	"testing"

	"travelmap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LabelKnownCategories(t *testing.T) {
	catalog := DefaultCatalog()

	expected := map[string]string{
		"attraction":          "🎯 Điểm tham quan",
		"museum":              "🏛️ Bảo tàng",
		"monument":            "🗿 Tượng đài",
		"viewpoint":           "👁️ Điểm ngắm cảnh",
		"hotel":               "🏨 Khách sạn",
		"hostel":              "🏠 Nhà nghỉ",
		"guest_house":         "🏡 Nhà khách",
		"artwork":             "🎨 Tác phẩm nghệ thuật",
		"castle":              "🏰 Lâu đài",
		"ruins":               "🏚️ Di tích",
		"archaeological_site": "⛏️ Khu khảo cổ",
		"memorial":            "🕯️ Đài tưởng niệm",
		"restaurant":          "🍽️ Nhà hàng",
		"cafe":                "☕ Quán cà phê",
		"bar":                 "🍺 Quán bar",
		"pub":                 "🍻 Quán rượu",
		"theatre":             "🎭 Nhà hát",
		"cinema":              "🎬 Rạp phim",
		"library":             "📚 Thư viện",
		"university":          "🎓 Trường đại học",
		"park":                "🌳 Công viên",
		"garden":              "🌸 Vườn",
		"sports_centre":       "⚽ Trung tâm thể thao",
		"stadium":             "🏟️ Sân vận động",
		"mall":                "🛍️ Trung tâm mua sắm",
		"supermarket":         "🛒 Siêu thị",
		"department_store":    "🏬 Cửa hàng bách hóa",
		"gift":                "🎁 Cửa hàng quà tặng",
	}

	assert.Len(t, catalog.Labels, len(expected))
	for category, label := range expected {
		assert.Equal(t, label, catalog.Label(category), category)
	}
	assert.Contains(t, catalog.Label("museum"), "Bảo tàng")
}

func TestCatalog_LabelFallback(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		category string
		expected string
	}{
		{category: "place", expected: "📍 Place"},
		{category: "fast_food", expected: "📍 Fast_Food"},
		{category: "ice cream", expected: "📍 Ice Cream"},
		{category: "BANK", expected: "📍 Bank"},
		{category: "", expected: "📍 "},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			label := catalog.Label(tt.category)
			assert.Equal(t, tt.expected, label)
			assert.NotEmpty(t, label)
		})
	}
}

func TestCatalog_RawCategoryPriority(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name     string
		tags     models.Tags
		expected string
	}{
		{name: "tourism wins over everything", tags: models.NewTags("shop", "gift", "amenity", "cafe", "tourism", "museum"), expected: "museum"},
		{name: "historic before amenity", tags: models.NewTags("amenity", "restaurant", "historic", "ruins"), expected: "ruins"},
		{name: "amenity before leisure", tags: models.NewTags("leisure", "park", "amenity", "library"), expected: "library"},
		{name: "leisure before shop", tags: models.NewTags("shop", "mall", "leisure", "garden"), expected: "garden"},
		{name: "shop only", tags: models.NewTags("shop", "supermarket"), expected: "supermarket"},
		{name: "empty value is skipped", tags: models.NewTags("tourism", "", "amenity", "bar"), expected: "bar"},
		{name: "no category tags", tags: models.NewTags("name", "Somewhere"), expected: "place"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.RawCategory(tt.tags))
		})
	}
}

func TestCatalog_CuratedSet(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog.Curated, 5)
	keys := make([]string, 0, len(catalog.Curated))
	for _, group := range catalog.Curated {
		keys = append(keys, group.Key)
	}
	assert.Equal(t, []string{"tourism", "historic", "amenity", "leisure", "shop"}, keys)
	assert.Equal(t, []string{"monument", "memorial", "castle", "ruins", "archaeological_site"}, catalog.Curated[1].Values)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "priority: [tourism"},
		{name: "no priority", doc: "fallback: place\n"},
		{name: "no fallback", doc: "priority: [tourism]\n"},
		{name: "empty group", doc: "priority: [tourism]\nfallback: place\ncurated:\n  - key: tourism\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

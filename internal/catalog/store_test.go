package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testCatalog(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(
		[]Product{
			{ID: "oud-cambodi", Name: "عود كمبودي", Price: decimal.NewFromInt(250), Category: TagIncense},
			{ID: "musk-tahara", Name: "مسك الطهارة", Price: decimal.NewFromInt(45), Category: TagPerfume},
			{ID: "bakhoor-maamoul", Name: "بخور معمول", Price: decimal.NewFromInt(85), Category: TagIncense},
		},
		[]Category{
			{ID: "incense", Name: "البخور"},
			{ID: "perfume", Name: "العطور"},
		},
	)
	require.NoError(t, err)
	return store
}

func TestLookupProduct(t *testing.T) {
	store := testCatalog(t)

	p, err := store.LookupProduct("oud-cambodi")
	require.NoError(t, err)
	assert.Equal(t, "عود كمبودي", p.Name)

	_, err = store.LookupProduct("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookupCategory(t *testing.T) {
	store := testCatalog(t)

	c, err := store.LookupCategory("perfume")
	require.NoError(t, err)
	assert.Equal(t, "العطور", c.Name)

	_, err = store.LookupCategory("candles")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryProductsDerivedFromTags(t *testing.T) {
	store := testCatalog(t)

	products, err := store.CategoryProducts("incense")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "oud-cambodi", products[0].ID)
	assert.Equal(t, "bakhoor-maamoul", products[1].ID)
}

func TestCategoryProductsUnknownCategoryFailsBeforeFiltering(t *testing.T) {
	store := testCatalog(t)

	_, err := store.CategoryProducts("candles")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProductsReturnsCopy(t *testing.T) {
	store := testCatalog(t)

	products := store.Products()
	products[0].Name = "changed"

	assert.Equal(t, "عود كمبودي", store.Products()[0].Name)
}

func TestNewStoreRejectsDuplicateProductIDs(t *testing.T) {
	_, err := NewStore(
		[]Product{
			{ID: "a", Price: decimal.NewFromInt(1), Category: TagIncense},
			{ID: "a", Price: decimal.NewFromInt(2), Category: TagIncense},
		},
		nil,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id")
}

func TestNewStoreRejectsUnknownTag(t *testing.T) {
	_, err := NewStore(
		[]Product{{ID: "a", Price: decimal.NewFromInt(1), Category: Tag("candles")}},
		nil,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category tag")
}

func TestNewStoreRejectsNegativePrice(t *testing.T) {
	_, err := NewStore(
		[]Product{{ID: "a", Price: decimal.NewFromInt(-5), Category: TagIncense}},
		nil,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative price")
}

func TestLoadFromDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&Product{}, &Category{}))

	require.NoError(t, db.Create(&[]Category{
		{ID: "incense", Name: "البخور"},
	}).Error)
	require.NoError(t, db.Create(&[]Product{
		{ID: "oud-cambodi", Name: "عود كمبودي", Price: decimal.NewFromInt(250), Category: TagIncense,
			Features: []string{"رائحة تدوم طويلاً"}},
	}).Error)

	store, err := Load(db)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len())
	p, err := store.LookupProduct("oud-cambodi")
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, []string{"رائحة تدوم طويلاً"}, p.Features)
}

package report

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() Receipt {
	return Receipt{
		Name:           "A",
		ContactNumber:  "1",
		Email:          "a@x.com",
		PaymentMethod:  "cash",
		ProductDetails: `[{"name":"Tea","category":"Bev","quantity":"2","price":10.0,"total":20.0}]`,
		TotalAmount:    "20",
	}
}

func TestRenderWritesArtifact(t *testing.T) {
	r := NewRenderer(t.TempDir())

	require.NoError(t, r.Render("bill-1", sampleReceipt()))

	assert.True(t, r.Exists("bill-1"))

	content, err := r.Read("bill-1")
	require.NoError(t, err)
	assert.True(t, len(content) > 0)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderOverwritesExistingArtifact(t *testing.T) {
	r := NewRenderer(t.TempDir())

	require.NoError(t, os.WriteFile(r.ArtifactPath("bill-2"), []byte("stale"), 0o644))
	require.NoError(t, r.Render("bill-2", sampleReceipt()))

	content, err := r.Read("bill-2")
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(content))
}

func TestRenderMalformedProductDetails(t *testing.T) {
	r := NewRenderer(t.TempDir())

	receipt := sampleReceipt()
	receipt.ProductDetails = "{not json"

	err := r.Render("bill-3", receipt)
	require.Error(t, err)
	assert.False(t, r.Exists("bill-3"), "no artifact on parse failure")
}

func TestRenderCreatesStoreRoot(t *testing.T) {
	root := t.TempDir() + "/nested/reports"
	r := NewRenderer(root)

	require.NoError(t, r.Render("bill-4", sampleReceipt()))
	assert.True(t, r.Exists("bill-4"))
}

func TestExistsIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	r := NewRenderer(root)

	require.NoError(t, os.MkdirAll(r.ArtifactPath("not-a-file"), 0o755))
	assert.False(t, r.Exists("not-a-file"))
}

func TestParseLineItems(t *testing.T) {
	items, err := ParseLineItems(`[{"name":"Tea","category":"Bev","quantity":"2","price":10.0,"total":20.0}]`)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Tea", items[0].Name)
	assert.Equal(t, "Bev", items[0].Category)
	assert.Equal(t, "2", items[0].Quantity)
	assert.Equal(t, 10.0, items[0].Price)
	assert.Equal(t, 20.0, items[0].Total)
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		10:    "10.0",
		10.5:  "10.5",
		10.25: "10.25",
		0:     "0.0",
	}
	for input, want := range cases {
		assert.Equal(t, want, formatAmount(input))
	}
}

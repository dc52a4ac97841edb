package service

import (
	"bytes"
	"testing"

	"github.com/citra/storefront/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestProductsXLSX_RoundTrip(t *testing.T) {
	original := int64(125000)
	products := catalogProducts()
	products[0].OriginalPrice = &original
	products[0].Rating = 4.8
	products[0].ReviewCount = 1240
	products[0].ImageURL = "https://example.com/lipstick.jpg"
	products[0].Description = "Lipstik cair matte tahan lama."

	var buf bytes.Buffer
	require.NoError(t, WriteProductsXLSX(&buf, products))

	got, err := ReadProductsXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, products[0], got[0])
	assert.Equal(t, products[1].SubSubCategory, got[1].SubSubCategory)
	assert.Nil(t, got[1].OriginalPrice)
	assert.True(t, got[2].IsNew)
	assert.True(t, got[2].IsBestseller)
}

func TestProductsXLSX_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProductsXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(productSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, productColumns, rows[0])
}

func TestReadProductsXLSX_BadPrice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"ID", "Name", "Brand", "Price"}
	row := []interface{}{"9", "Serum", "CLEAN SKIN", "cheap"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := ReadProductsXLSX(&buf)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadProductsXLSX_NonFiniteRating(t *testing.T) {
	for _, rating := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		t.Run(rating, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()

			header := []interface{}{"ID", "Name", "Brand", "Price", "OriginalPrice", "Rating"}
			row := []interface{}{"9", "Serum", "CLEAN SKIN", "1000", "", rating}
			require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
			require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

			var buf bytes.Buffer
			require.NoError(t, f.Write(&buf))

			_, err := ReadProductsXLSX(&buf)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Contains(t, err.Error(), "rating")
		})
	}
}

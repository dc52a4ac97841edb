package service

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/citra/storefront/internal/app/model"
	"github.com/xuri/excelize/v2"
)

const productSheet = "Products"

var productColumns = []string{
	"ID", "Name", "Brand", "Price", "OriginalPrice", "Rating", "ReviewCount",
	"ImageURL", "IsNew", "IsBestseller", "Category", "SubCategory",
	"SubSubCategory", "Tags", "Description",
}

// WriteProductsXLSX writes one header row and one row per product
func WriteProductsXLSX(w io.Writer, products []model.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", productSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(productColumns))
	for i, h := range productColumns {
		header[i] = h
	}
	if err := f.SetSheetRow(productSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range products {
		var original interface{} = ""
		if p.OriginalPrice != nil {
			original = *p.OriginalPrice
		}
		row := []interface{}{
			p.ID, p.Name, p.Brand, p.Price, original, p.Rating, p.ReviewCount,
			p.ImageURL, p.IsNew, p.IsBestseller, p.Category, p.SubCategory,
			p.SubSubCategory, strings.Join(p.Tags, ", "), p.Description,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(productSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write product %s: %w", p.ID, err)
		}
	}

	return f.Write(w)
}

// ReadProductsXLSX parses the first sheet in the WriteProductsXLSX layout.
// Rows are only shape-checked here; store rules apply on upsert.
func ReadProductsXLSX(r io.Reader) ([]model.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets found in XLSX")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX")
	}

	products := make([]model.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		col := func(n int) string {
			if n < len(row) {
				return strings.TrimSpace(row[n])
			}
			return ""
		}
		if strings.Join(row, "") == "" {
			continue
		}

		p := model.Product{
			ID:             col(0),
			Name:           col(1),
			Brand:          col(2),
			ImageURL:       col(7),
			Category:       col(10),
			SubCategory:    col(11),
			SubSubCategory: col(12),
			Description:    col(14),
		}
		if p.Price, err = parseInt64(col(3), "price"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if v := col(4); v != "" {
			orig, err := parseInt64(v, "originalPrice")
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
			p.OriginalPrice = &orig
		}
		if v := col(5); v != "" {
			if p.Rating, err = strconv.ParseFloat(v, 64); err != nil || math.IsNaN(p.Rating) || math.IsInf(p.Rating, 0) {
				return nil, fmt.Errorf("row %d: %w", line, model.NewValidationError("rating", "must be a number"))
			}
		}
		if v := col(6); v != "" {
			if p.ReviewCount, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("row %d: %w", line, model.NewValidationError("reviewCount", "must be an integer"))
			}
		}
		p.IsNew = parseFlag(col(8))
		p.IsBestseller = parseFlag(col(9))
		if tags := col(13); tags != "" {
			p.Tags = strings.Split(tags, ",")
		}
		p.Normalize()
		products = append(products, p)
	}
	return products, nil
}

func parseInt64(s, field string) (int64, error) {
	if s == "" {
		return 0, model.NewValidationError(field, "is required")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, model.NewValidationError(field, "must be an integer")
	}
	return n, nil
}

func parseFlag(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

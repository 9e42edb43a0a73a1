package entity

import "testing"

func TestIsValidProductCategory(t *testing.T) {
	for _, category := range []string{ProductCategoryFrame, ProductCategoryLens, ProductCategorySunglasses, ProductCategoryAccessory} {
		if !IsValidProductCategory(category) {
			t.Errorf("IsValidProductCategory(%q) = false, want true", category)
		}
	}

	for _, category := range []string{"", "glasses", "FRAME"} {
		if IsValidProductCategory(category) {
			t.Errorf("IsValidProductCategory(%q) = true, want false", category)
		}
	}
}

func TestBelowMinStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		want     bool
	}{
		{"above minimum", 10, 5, false},
		{"at minimum", 5, 5, false},
		{"below minimum", 2, 5, true},
		{"zero minimum", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Stock: tt.stock, MinStock: tt.minStock}
			if got := p.BelowMinStock(); got != tt.want {
				t.Errorf("BelowMinStock() with stock=%d min=%d = %v, want %v", tt.stock, tt.minStock, got, tt.want)
			}
		})
	}
}

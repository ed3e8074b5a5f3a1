package main

import (
	"github.com/shopspring/decimal"

	"github.com/mabkhara/storefront"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SampleCategories returns the storefront's two product families.
func SampleCategories() []storefront.Category {
	return []storefront.Category{
		{
			ID:            "incense",
			Name:          "البخور",
			NameEN:        "Incense",
			Description:   "أجود أنواع البخور والعود الطبيعي",
			DescriptionEN: "The finest natural incense and oud",
		},
		{
			ID:            "perfume",
			Name:          "العطور",
			NameEN:        "Perfumes",
			Description:   "عطور شرقية فاخرة وزيوت عطرية أصيلة",
			DescriptionEN: "Luxurious oriental perfumes and authentic fragrance oils",
		},
	}
}

// SampleProducts returns the sample fragrance catalog used for development.
func SampleProducts() []storefront.Product {
	return []storefront.Product{
		{
			ID:            "oud-cambodi",
			Name:          "عود كمبودي فاخر",
			NameEN:        "Premium Cambodian Oud",
			Description:   "قطع عود كمبودي أصلي برائحة غنية تدوم طويلاً",
			DescriptionEN: "Genuine Cambodian oud chips with a rich, long-lasting scent",
			Price:         price("250"),
			OriginalPrice: pricePtr("320"),
			Category:      storefront.TagIncense,
			InStock:       true,
			Rating:        price("4.8"),
			Reviews:       124,
			Features:      []string{"رائحة تدوم طويلاً", "قطع مختارة يدوياً", "تعبئة محكمة"},
			Size:          "50g",
			Origin:        "كمبوديا",
		},
		{
			ID:            "bakhoor-maamoul",
			Name:          "بخور معمول ملكي",
			NameEN:        "Royal Maamoul Bakhoor",
			Description:   "بخور معمول بخلطة ملكية من العود والمسك والعنبر",
			DescriptionEN: "Maamoul bakhoor blended from oud, musk and amber",
			Price:         price("85"),
			Category:      storefront.TagIncense,
			InStock:       true,
			Rating:        price("4.5"),
			Reviews:       89,
			Features:      []string{"خلطة ملكية", "مناسب للمجالس"},
			Ingredients:   []string{"عود", "مسك", "عنبر"},
			Weight:        "40g",
		},
		{
			ID:            "oud-hindi",
			Name:          "عود هندي أصلي",
			NameEN:        "Authentic Indian Oud",
			Description:   "عود هندي معتق برائحة عميقة ودخان كثيف",
			DescriptionEN: "Aged Indian oud with a deep scent and dense smoke",
			Price:         price("450"),
			OriginalPrice: pricePtr("500"),
			Category:      storefront.TagIncense,
			InStock:       true,
			Rating:        price("4.9"),
			Reviews:       203,
			Features:      []string{"معتق", "درجة أولى"},
			Size:          "30g",
			Origin:        "الهند",
		},
		{
			ID:            "bakhoor-anbar",
			Name:          "بخور العنبر",
			NameEN:        "Amber Bakhoor",
			Description:   "بخور بعبير العنبر الدافئ لجلسات المساء",
			DescriptionEN: "Bakhoor with warm amber notes for evening gatherings",
			Price:         price("120"),
			Category:      storefront.TagIncense,
			InStock:       true,
			Rating:        price("4.2"),
			Reviews:       45,
			Features:      []string{"عبير دافئ"},
			Weight:        "60g",
		},
		{
			ID:            "bakhoor-lamsat",
			Name:          "بخور لمسات",
			NameEN:        "Lamsat Bakhoor",
			Description:   "خلطة يومية خفيفة بسعر مناسب",
			DescriptionEN: "A light everyday blend at an accessible price",
			Price:         price("65"),
			Category:      storefront.TagIncense,
			InStock:       false,
			Rating:        price("4.0"),
			Reviews:       31,
			Features:      []string{"استخدام يومي"},
			Weight:        "35g",
		},
		{
			ID:            "musk-tahara",
			Name:          "مسك الطهارة الأبيض",
			NameEN:        "White Musk Oil",
			Description:   "زيت مسك أبيض نقي برائحة ناعمة",
			DescriptionEN: "Pure white musk oil with a soft scent",
			Price:         price("45"),
			Category:      storefront.TagPerfume,
			InStock:       true,
			Rating:        price("4.6"),
			Reviews:       167,
			Features:      []string{"خالٍ من الكحول", "ثبات عالٍ"},
			Ingredients:   []string{"مسك أبيض"},
			Size:          "12ml",
		},
		{
			ID:            "rose-taifi",
			Name:          "عطر الورد الطائفي",
			NameEN:        "Taif Rose Perfume",
			Description:   "عطر مركز من الورد الطائفي المقطر يدوياً",
			DescriptionEN: "Concentrated perfume from hand-distilled Taif roses",
			Price:         price("180"),
			OriginalPrice: pricePtr("220"),
			Category:      storefront.TagPerfume,
			InStock:       true,
			Rating:        price("4.7"),
			Reviews:       98,
			Features:      []string{"تقطير يدوي", "تركيز عالٍ"},
			Ingredients:   []string{"ورد طائفي"},
			Size:          "6ml",
			Origin:        "الطائف",
		},
		{
			ID:            "amber-oud",
			Name:          "عطر العنبر والعود",
			NameEN:        "Amber & Oud Perfume",
			Description:   "مزيج شرقي من العنبر الدافئ والعود الفاخر",
			DescriptionEN: "An oriental blend of warm amber and fine oud",
			Price:         price("150"),
			Category:      storefront.TagPerfume,
			InStock:       true,
			Rating:        price("4.3"),
			Reviews:       54,
			Features:      []string{"مزيج شرقي"},
			Ingredients:   []string{"عنبر", "عود", "صندل"},
			Size:          "50ml",
		},
	}
}

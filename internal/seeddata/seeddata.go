// Package seeddata holds the fixtures installed on first boot: the Jordan
// location taxonomy, property types, default site copy and a handful of
// sample listings. Both storage implementations seed from here so the
// zero-configuration store and a fresh database look identical.
package seeddata

import "aqar-service/internal/core/domain"

// GovernorateSeed bundles a governorate with its directorates so the seeder
// can wire the foreign keys after insertion.
type GovernorateSeed struct {
	NameAr       string
	NameEn       string
	Directorates []DirectorateSeed
}

type DirectorateSeed struct {
	NameAr string
	NameEn string
}

type SettingSeed struct {
	Key   string
	Value string
}

// Governorates returns the location taxonomy.
func Governorates() []GovernorateSeed {
	return []GovernorateSeed{
		{
			NameAr: "عمان", NameEn: "Amman",
			Directorates: []DirectorateSeed{
				{NameAr: "قصبة عمان", NameEn: "Qasabat Amman"},
				{NameAr: "وادي السير", NameEn: "Wadi As-Seer"},
				{NameAr: "الجامعة", NameEn: "Al-Jami'a"},
				{NameAr: "ماركا", NameEn: "Marka"},
				{NameAr: "القويسمة", NameEn: "Al-Quwaysimah"},
			},
		},
		{
			NameAr: "إربد", NameEn: "Irbid",
			Directorates: []DirectorateSeed{
				{NameAr: "قصبة إربد", NameEn: "Qasabat Irbid"},
				{NameAr: "بني عبيد", NameEn: "Bani Obaid"},
				{NameAr: "الرمثا", NameEn: "Ar-Ramtha"},
			},
		},
		{
			NameAr: "الزرقاء", NameEn: "Zarqa",
			Directorates: []DirectorateSeed{
				{NameAr: "قصبة الزرقاء", NameEn: "Qasabat Zarqa"},
				{NameAr: "الرصيفة", NameEn: "Russeifa"},
			},
		},
		{
			NameAr: "البلقاء", NameEn: "Balqa",
			Directorates: []DirectorateSeed{
				{NameAr: "قصبة السلط", NameEn: "Qasabat As-Salt"},
				{NameAr: "عين الباشا", NameEn: "Ain Al-Basha"},
			},
		},
		{
			NameAr: "العقبة", NameEn: "Aqaba",
			Directorates: []DirectorateSeed{
				{NameAr: "قصبة العقبة", NameEn: "Qasabat Aqaba"},
			},
		},
	}
}

// PropertyTypes returns the default property-type dictionary.
func PropertyTypes() []domain.PropertyType {
	return []domain.PropertyType{
		{NameAr: "شقة", NameEn: "Apartment", Active: true},
		{NameAr: "فيلا", NameEn: "Villa", Active: true},
		{NameAr: "أرض", NameEn: "Land", Active: true},
		{NameAr: "محل تجاري", NameEn: "Commercial", Active: true},
		{NameAr: "مزرعة", NameEn: "Farm", Active: true},
		{NameAr: "مستودع", NameEn: "Warehouse", Active: true},
	}
}

// SiteSettings returns the default editable site copy.
func SiteSettings() []SettingSeed {
	return []SettingSeed{
		{Key: "site_name_ar", Value: "عقار - للتسويق العقاري"},
		{Key: "site_name_en", Value: "Aqar Real Estate"},
		{Key: "phone", Value: "+962 6 000 0000"},
		{Key: "whatsapp", Value: "+962 79 000 0000"},
		{Key: "email", Value: "info@aqar.local"},
		{Key: "address_ar", Value: "عمان، الأردن"},
		{Key: "address_en", Value: "Amman, Jordan"},
		{Key: "about_ar", Value: "شركة متخصصة في التسويق العقاري وإدارة الأملاك في الأردن."},
		{Key: "about_en", Value: "A company specialized in real-estate marketing and property management in Jordan."},
		{Key: "facebook_url", Value: ""},
		{Key: "instagram_url", Value: ""},
	}
}

// SampleProperties returns the demo listings. GovernorateID/DirectorateID
// are indexes into the seeded taxonomy (1-based, insertion order); the
// seeder maps them to the actual generated ids.
func SampleProperties() []domain.Property {
	gov := func(id int) *int { return &id }

	return []domain.Property{
		{
			Title:        "شقة طابقية فاخرة في عبدون",
			Description:  "شقة واسعة مع إطلالة مميزة، قريبة من الخدمات، تشطيبات سوبر ديلوكس.",
			Price:        185000,
			Size:         210,
			Bedrooms:     4,
			Bathrooms:    3,
			PropertyType: "شقة",
			GovernorateID: gov(1),
			DirectorateID: gov(1),
			Neighborhood: "عبدون",
			Address:      "عبدون الشمالي",
			Images:       []string{domain.PlaceholderImage},
			Featured:     true,
			Available:    true,
		},
		{
			Title:        "فيلا مستقلة في دابوق",
			Description:  "فيلا على أرض 750م مع حديقة وكراج لسيارتين.",
			Price:        520000,
			Size:         480,
			Bedrooms:     5,
			Bathrooms:    5,
			PropertyType: "فيلا",
			GovernorateID: gov(1),
			DirectorateID: gov(2),
			Village:      "دابوق",
			Basin:        "أم الأشبال",
			PlotNumber:   "214",
			Images:       []string{domain.PlaceholderImage},
			Featured:     true,
			Available:    true,
		},
		{
			Title:        "أرض سكنية في بني عبيد",
			Description:  "أرض سكن (ب) منسوبها جيد على شارعين.",
			Price:        95000,
			Size:         830,
			Bedrooms:     0,
			Bathrooms:    0,
			PropertyType: "أرض",
			GovernorateID: gov(2),
			DirectorateID: gov(7),
			Village:      "الحصن",
			Basin:        "المغير",
			PlotNumber:   "88",
			Images:       []string{domain.PlaceholderImage},
			Featured:     false,
			Available:    true,
		},
		{
			Title:        "شقة أرضية مع ترس في الرصيفة",
			Description:  "شقة أرضية 150م مع ترس أمامي ومدخل مستقل.",
			Price:        62000,
			Size:         150,
			Bedrooms:     3,
			Bathrooms:    2,
			PropertyType: "شقة",
			GovernorateID: gov(3),
			DirectorateID: gov(10),
			Neighborhood: "حي الجندي",
			Images:       []string{domain.PlaceholderImage},
			Featured:     false,
			Available:    true,
		},
		{
			Title:        "محل تجاري على الشارع الرئيسي",
			Description:  "محل بواجهة عريضة يصلح لكافة الأعمال التجارية.",
			Price:        140000,
			Size:         95,
			Bedrooms:     0,
			Bathrooms:    1,
			PropertyType: "محل تجاري",
			GovernorateID: gov(1),
			DirectorateID: gov(4),
			Address:      "شارع الملكة رانيا",
			Images:       []string{domain.PlaceholderImage},
			Featured:     false,
			Available:    false,
		},
	}
}

package exemption

// Category names of the Nigerian VAT exemption schedule covered by the
// classifier.
const (
	CategoryMedical        = "medicalAndPharmaceutical"
	CategoryBasicFood      = "basicFoodItems"
	CategoryEducational    = "educationalMaterials"
	CategoryBabyProducts   = "babyProducts"
	CategoryAgricultural   = "agriculturalEquipment"
	CategoryExportServices = "exportServices"
)

// Category pairs a category name with its keyword list and a confidence
// adjustment. Food and medical are common, low-false-positive categories
// and get a bonus; agricultural equipment wording is more ambiguous and is
// penalised.
type Category struct {
	Name     string
	Adjust   int
	Keywords []string
}

// categories is scanned in declaration order; earlier categories win ties.
var categories = []Category{
	{
		Name:   CategoryMedical,
		Adjust: 5,
		Keywords: []string{
			"medicine", "drug", "pharmaceutical", "paracetamol", "antibiotic",
			"antimalarial", "vaccine", "syringe", "bandage", "insulin",
			"tablet", "capsule", "ointment", "inhaler", "thermometer",
			"wheelchair", "crutches", "first aid kit", "medical equipment",
			"hospital supplies",
		},
	},
	{
		Name:   CategoryBasicFood,
		Adjust: 5,
		Keywords: []string{
			"rice", "beans", "yam", "cassava", "garri", "maize", "corn",
			"millet", "sorghum", "milk", "bread", "flour", "egg", "fish",
			"meat", "chicken", "vegetable", "fruit", "onion", "tomato",
			"pepper", "salt", "groundnut", "palm oil", "cooking oil",
			"drinking water",
		},
	},
	{
		Name:   CategoryEducational,
		Adjust: 0,
		Keywords: []string{
			"book", "textbook", "notebook", "exercise book", "pencil", "pen",
			"crayon", "chalk", "ruler", "eraser", "dictionary",
			"encyclopedia", "school uniform", "educational material",
			"learning material", "laboratory equipment",
		},
	},
	{
		Name:   CategoryBabyProducts,
		Adjust: 0,
		Keywords: []string{
			"diaper", "nappy", "baby food", "infant formula", "baby formula",
			"baby wipes", "feeding bottle", "baby powder", "baby lotion",
			"baby soap", "pacifier", "teether", "crib", "baby clothes",
		},
	},
	{
		Name:   CategoryAgricultural,
		Adjust: -5,
		Keywords: []string{
			"tractor", "plough", "plow", "harvester", "irrigation",
			"fertilizer", "fertiliser", "pesticide", "herbicide", "seedling",
			"cutlass", "sprayer", "incubator", "animal feed", "poultry feed",
			"farm machinery", "agricultural equipment", "fishing net",
		},
	},
}

// synonyms expands candidate phrases before matching. Keys are replaced
// word-wise inside each candidate.
var synonyms = map[string][]string{
	"medicine": {"drug", "medication", "pharmaceutical"},
	"drug":     {"medicine", "medication"},
	"baby":     {"infant", "newborn"},
	"infant":   {"baby"},
	"book":     {"textbook"},
	"food":     {"foodstuff"},
	"milk":     {"dairy"},
	"farm":     {"agricultural", "farming"},
	"school":   {"educational"},
	"maize":    {"corn"},
}

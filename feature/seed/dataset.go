package seed

// translation is the bundled text for one plant in one language.
type translation struct {
	CommonName  string
	Description string
	Uses        string
}

// plantSpec is one bundled plant. The key doubles as the media folder name.
type plantSpec struct {
	Key          string
	Category     string
	Family       string
	Genus        string
	Species      string
	Toxicity     string
	Translations map[string]translation
}

// languageSpec is one row of the administratively known language set.
type languageSpec struct {
	Code string
	Name string
}

var languages = []languageSpec{
	{Code: "en", Name: "English"},
	{Code: "fr", Name: "French"},
	{Code: "pg", Name: "Pidgin"},
	{Code: "gm", Name: "Gombale"},
	{Code: "bli", Name: "Bambili"},
	{Code: "bui", Name: "Bambui"},
	{Code: "ns", Name: "Nso"},
	{Code: "km", Name: "Kom"},
}

var categories = []string{
	"Medicinal",
	"Tubers",
	"Grains",
	"Fruits",
	"Vegetables",
	"Spices",
}

var plants = []plantSpec{
	{
		Key:      "aloevera",
		Category: "Medicinal",
		Family:   "Asphodelaceae",
		Genus:    "Aloe",
		Species:  "Aloe vera",
		Toxicity: "Mildly toxic (sap can cause skin irritation, ingestion may cause GI upset)",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Aloe Vera",
				Description: "A succulent plant species known for its medicinal properties, particularly for skin care and wound healing.",
				Uses:        "Medicinal, skincare, wound healing, digestive health",
			},
			"fr": {
				CommonName:  "Aloès",
				Description: "Une plante succulente connue pour ses propriétés médicinales, particulièrement pour les soins de la peau et la cicatrisation des plaies.",
				Uses:        "Médicinal, soins de la peau, cicatrisation, santé digestive",
			},
			"pg": {
				CommonName:  "Aloe Vera",
				Description: "Na plant wey people dey use for medicine, e good for skin and to heal wound.",
				Uses:        "Medicine, skin care, wound healing, belle (stomach) health",
			},
		},
	},
	{
		Key:      "banana",
		Category: "Fruits",
		Family:   "Musaceae",
		Genus:    "Musa",
		Species:  "Musa acuminata",
		Toxicity: "Non-toxic",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Banana",
				Description: "A tropical fruit tree producing elongated, edible fruits rich in potassium and other nutrients.",
				Uses:        "Food, nutrition, traditional medicine",
			},
			"fr": {
				CommonName:  "Banane",
				Description: "Un arbre fruitier tropical produisant des fruits allongés, comestibles, riches en potassium et autres nutriments.",
				Uses:        "Alimentation, nutrition, médecine traditionnelle",
			},
			"pg": {
				CommonName:  "Banana",
				Description: "Na fruit tree for hot place wey dey give long fruit wey get plenty potassium.",
				Uses:        "Chop, better food, local medicine",
			},
		},
	},
	{
		Key:      "cassava",
		Category: "Tubers",
		Family:   "Euphorbiaceae",
		Genus:    "Manihot",
		Species:  "Manihot esculenta",
		Toxicity: "Toxic if raw (contains cyanogenic glycosides, must be cooked)",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Cassava",
				Description: "A woody shrub whose roots are a major source of carbohydrates in tropical regions.",
				Uses:        "Food staple, starch production, animal feed",
			},
			"fr": {
				CommonName:  "Manioc",
				Description: "Un arbuste dont les racines sont une source majeure de glucides dans les régions tropicales.",
				Uses:        "Aliment de base, production d'amidon, alimentation animale",
			},
			"pg": {
				CommonName:  "Cassava",
				Description: "Na plant wey root dey give plenty food for hot place, e get plenty starch.",
				Uses:        "Main food, make starch, feed animal",
			},
		},
	},
	{
		Key:      "coconut",
		Category: "Fruits",
		Family:   "Arecaceae",
		Genus:    "Cocos",
		Species:  "Cocos nucifera",
		Toxicity: "Non-toxic",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Coconut",
				Description: "A tropical palm tree producing large, hard-shelled fruits with edible flesh and water.",
				Uses:        "Food, oil, water, building materials, traditional medicine",
			},
			"fr": {
				CommonName:  "Cocotier",
				Description: "Un palmier tropical produisant de gros fruits à coque dure avec une chair et de l'eau comestibles.",
				Uses:        "Alimentation, huile, eau, matériaux de construction, médecine traditionnelle",
			},
			"pg": {
				CommonName:  "Coconut",
				Description: "Na palm tree for hot place wey dey give big fruit with water and food inside.",
				Uses:        "Chop, oil, drink water, build house, local medicine",
			},
		},
	},
	{
		Key:      "ginger",
		Category: "Spices",
		Family:   "Zingiberaceae",
		Genus:    "Zingiber",
		Species:  "Zingiber officinale",
		Toxicity: "Non-toxic",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Ginger",
				Description: "A flowering plant whose rhizome is used as a spice and traditional medicine.",
				Uses:        "Spice, traditional medicine, digestive aid",
			},
			"fr": {
				CommonName:  "Gingembre",
				Description: "Une plante à fleurs dont les rhizomes sont utilisés comme épice et en médecine traditionnelle.",
				Uses:        "Épice, médecine traditionnelle, aide digestive",
			},
			"pg": {
				CommonName:  "Ginger",
				Description: "Na plant wey root dey use for pepper soup and medicine, e fit color food.",
				Uses:        "Pepper, local medicine, color food",
			},
		},
	},
	{
		Key:      "mango",
		Category: "Fruits",
		Family:   "Anacardiaceae",
		Genus:    "Mangifera",
		Species:  "Mangifera indica",
		Toxicity: "Non-toxic (fruit); sap can cause dermatitis",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Mango",
				Description: "A tropical stone fruit tree producing sweet, juicy fruits.",
				Uses:        "Food, nutrition, traditional medicine",
			},
			"fr": {
				CommonName:  "Mangue",
				Description: "Un arbre à fruits de la région tropicale produisant des fruits doux et juteux.",
				Uses:        "Alimentation, nutrition, médecine traditionnelle",
			},
			"pg": {
				CommonName:  "Mango",
				Description: "Na fruit tree for hot place wey dey give big fruit with sweet flesh.",
				Uses:        "Chop, better food, local medicine",
			},
		},
	},
	{
		Key:      "spinach",
		Category: "Vegetables",
		Family:   "Amaranthaceae",
		Genus:    "Spinacia",
		Species:  "Spinacia oleracea",
		Toxicity: "Non-toxic (contains oxalates, caution for kidney stone risk)",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Spinach",
				Description: "A leafy green vegetable rich in iron and other nutrients.",
				Uses:        "Food, nutrition, traditional medicine",
			},
			"fr": {
				CommonName:  "Épinards",
				Description: "Un légume vert feuillu, riche en fer et autres nutriments.",
				Uses:        "Alimentation, nutrition, médecine traditionnelle",
			},
			"pg": {
				CommonName:  "Spinach",
				Description: "Na plant wey people dey chop for vegetable, e dey long and people dey chop am as vegetable.",
				Uses:        "Chop, rub for skin, make body get water",
			},
		},
	},
	{
		Key:      "watermelon",
		Category: "Fruits",
		Family:   "Cucurbitaceae",
		Genus:    "Citrullus",
		Species:  "Citrullus lanatus",
		Toxicity: "Non-toxic",
		Translations: map[string]translation{
			"en": {
				CommonName:  "Watermelon",
				Description: "A flowering plant species of the Cucurbitaceae family, producing large, sweet fruits.",
				Uses:        "Food, nutrition, hydration",
			},
			"fr": {
				CommonName:  "Pastèque",
				Description: "Une plante à fleurs de la famille des Cucurbitaceae produisant des fruits doux et juteux.",
				Uses:        "Alimentation, nutrition, hydratation",
			},
			"pg": {
				CommonName:  "Watermelon",
				Description: "Na fruit tree for hot place wey dey give big fruit with sweet flesh.",
				Uses:        "Chop, better food, local medicine",
			},
		},
	},
}

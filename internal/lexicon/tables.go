package lexicon

// Default returns the built-in Tamil/English grocery lexicon. The returned
// value is freshly allocated on every call so callers can never alias the
// tables of another component.
func Default() *Tables {
	return &Tables{
		TamilNumbers:   defaultTamilNumbers(),
		EnglishNumbers: defaultEnglishNumbers(),
		QuantityUnits:  defaultQuantityUnits(),
		RateKeywords:   defaultRateKeywords(),
		Colloquial:     defaultColloquial(),
		Corrections:    defaultCorrections(),
		Items:          defaultItems(),
		Loanwords:      defaultLoanwords(),
	}
}

func defaultTamilNumbers() map[string]float64 {
	return map[string]float64{
		// Formal cardinals.
		"ஒன்று":     1,
		"இரண்டு":    2,
		"மூன்று":    3,
		"நான்கு":    4,
		"ஐந்து":     5,
		"ஆறு":       6,
		"ஏழு":       7,
		"எட்டு":     8,
		"ஒன்பது":    9,
		"பத்து":     10,
		"பதினொன்று": 11,
		"பன்னிரண்டு": 12,
		"பதின்மூன்று": 13,
		"பதினான்கு": 14,
		"பதினைந்து": 15,
		"பதினாறு":   16,
		"பதினேழு":   17,
		"பதினெட்டு": 18,
		"பத்தொன்பது": 19,
		"இருபது":    20,
		"முப்பது":   30,
		"நாற்பது":   40,
		"ஐம்பது":    50,
		"அறுபது":    60,
		"எழுபது":    70,
		"எண்பது":    80,
		"தொண்ணூறு":  90,
		"நூறு":      100,
		"இருநூறு":   200,
		"முந்நூறு":  300,
		"நானூறு":    400,
		"ஐநூறு":     500,
		"அறுநூறு":   600,
		"எழுநூறு":   700,
		"எண்ணூறு":   800,
		"தொள்ளாயிரம்": 900,
		"ஆயிரம்":    1000,

		// Dialectal / spoken variants the recognizer produces routinely.
		// ஒரு is the adjectival one ("ஒரு கிலோ"), far more common in
		// running speech than the cardinal.
		"ஒரு":     1,
		"ஒண்ணு":   1,
		"ரெண்டு":  2,
		"மூணு":    3,
		"நாலு":    4,
		"அஞ்சு":   5,
		"ஒம்பது":  9,
		"பன்னெண்டு": 12,
		"அம்பது":  50,
		"நூறா":    100,

		// Fractions.
		"அரை":     0.5,
		"கால்":    0.25,
		"முக்கால்": 0.75,
	}
}

func defaultEnglishNumbers() map[string]float64 {
	return map[string]float64{
		"zero":      0,
		"one":       1,
		"two":       2,
		"three":     3,
		"four":      4,
		"five":      5,
		"six":       6,
		"seven":     7,
		"eight":     8,
		"nine":      9,
		"ten":       10,
		"eleven":    11,
		"twelve":    12,
		"thirteen":  13,
		"fourteen":  14,
		"fifteen":   15,
		"sixteen":   16,
		"seventeen": 17,
		"eighteen":  18,
		"nineteen":  19,
		"twenty":    20,
		"thirty":    30,
		"forty":     40,
		"fifty":     50,
		"sixty":     60,
		"seventy":   70,
		"eighty":    80,
		"ninety":    90,
		"hundred":   100,
		"thousand":  1000,

		"half":    0.5,
		"quarter": 0.25,

		// Frequent ASR mis-hearings of spoken digits.
		"won":  1,
		"too":  2,
		"tree": 3,
		"free": 3,
		"fore": 4,
		"fife": 5,
		"ate":  8,
	}
}

func defaultQuantityUnits() []string {
	return []string{
		// Weight.
		"kilograms", "kilogram", "kilos", "kilo", "kgs", "kg",
		"grams", "gram", "gms", "gm", "g",
		// Volume.
		"litres", "litre", "liters", "liter", "l",
		"millilitres", "millilitre", "milliliters", "milliliter", "ml",
		// Count.
		"packets", "packet", "pieces", "piece", "dozens", "dozen",
		"bottles", "bottle", "boxes", "box", "bunches", "bunch", "bags", "bag",
		// Tamil.
		"கிலோ", "கிராம்", "லிட்டர்", "மில்லி",
		"பாக்கெட்", "டஜன்", "மூட்டை", "கட்டு", "பாட்டில்",
	}
}

func defaultRateKeywords() []string {
	return []string{
		"rupees", "rupee", "rupies", "rs", "₹",
		"bucks", "price", "rate",
		"ரூபாய்", "ரூபா", "ரூவா", "ருபாய்",
	}
}

func defaultColloquial() map[string]string {
	return map[string]string{
		// Spoken cardinals → formal written forms.
		"ஒண்ணு":  "ஒன்று",
		"ரெண்டு": "இரண்டு",
		"மூணு":   "மூன்று",
		"நாலு":   "நான்கு",
		"அஞ்சு":  "ஐந்து",
		"ஒம்பது": "ஒன்பது",
		"அம்பது": "ஐம்பது",

		// Everyday colloquialisms that bleed into billing speech.
		"வேணும்":   "வேண்டும்",
		"வேணாம்":   "வேண்டாம்",
		"இல்ல":     "இல்லை",
		"குடு":     "கொடு",
		"கொடுங்க":  "கொடுங்கள்",
		"போடுங்க":  "போடுங்கள்",
		"வாங்கிட்டேன்": "வாங்கினேன்",
		"எவ்ளோ":    "எவ்வளவு",
		"இவ்ளோ":    "இவ்வளவு",
	}
}

func defaultCorrections() map[string]string {
	return map[string]string{
		// English item mis-recognitions.
		"tomatto":  "tomato",
		"tamato":   "tomato",
		"tomoto":   "tomato",
		"patato":   "potato",
		"potatoe":  "potato",
		"potata":   "potato",
		"onian":    "onion",
		"carret":   "carrot",
		"carrat":   "carrot",
		"brinjle":  "brinjal",
		"shuger":   "sugar",
		"bannana":  "banana",

		// Tamil item mis-recognitions (missing ligatures, wrong vowels).
		"தக்காலி":    "தக்காளி",
		"தக்கலி":     "தக்காளி",
		"வெங்கயம்":   "வெங்காயம்",
		"வெங்காயும்": "வெங்காயம்",
		"உருளகிழங்கு": "உருளைக்கிழங்கு",
		"கத்திரிக்கா": "கத்தரிக்காய்",
	}
}

func defaultItems() []string {
	return []string{
		// Vegetables (Tamil).
		"தக்காளி", "வெங்காயம்", "உருளைக்கிழங்கு", "கத்தரிக்காய்",
		"வெண்டைக்காய்", "முருங்கைக்காய்", "புடலங்காய்", "பாகற்காய்",
		"அவரைக்காய்", "சுரைக்காய்", "பூசணிக்காய்", "முட்டைகோஸ்",
		"பச்சை மிளகாய்", "மிளகாய்", "இஞ்சி", "பூண்டு",
		"கொத்தமல்லி", "கறிவேப்பிலை", "கேரட்", "பீன்ஸ்",

		// Grains and staples (Tamil).
		"அரிசி", "பருப்பு", "துவரம் பருப்பு", "உளுந்து", "கடலை",
		"கோதுமை", "ரவை", "மைதா",

		// Fruits (Tamil).
		"வாழைப்பழம்", "மாம்பழம்", "திராட்சை", "பப்பாளி",
		"தேங்காய்", "எலுமிச்சை", "ஆப்பிள்", "ஆரஞ்சு",

		// Dairy, spices, household (Tamil).
		"பால்", "தயிர்", "வெண்ணெய்", "நெய்", "முட்டை",
		"சர்க்கரை", "உப்பு", "எண்ணெய்", "மிளகு", "சீரகம்",
		"மஞ்சள்", "புளி", "காபி",

		// English vocabulary.
		"tomato", "onion", "potato", "carrot", "beans", "cabbage",
		"brinjal", "okra", "drumstick", "pumpkin", "chilli", "ginger",
		"garlic", "coriander", "rice", "wheat", "dal", "sugar", "salt",
		"milk", "curd", "butter", "ghee", "egg", "eggs", "oil",
		"banana", "mango", "apple", "orange", "grapes", "coconut",
		"lemon", "papaya", "turmeric", "pepper", "cumin", "tamarind",
		"bread", "biscuit", "coffee", "tea", "soap", "shampoo",
		"toothpaste",
	}
}

func defaultLoanwords() []string {
	return []string{
		// Units spoken in English within Tamil sentences.
		"kg", "kgs", "kilo", "kilos", "gram", "grams", "gm",
		"litre", "liter", "ml", "packet", "dozen", "piece",
		// Billing English that needs no formalization.
		"rate", "price", "rs", "bill", "total", "amount",
		// Produce routinely named in English even in Tamil speech.
		"carrot", "beans", "cabbage", "apple", "orange", "bread",
		"biscuit", "soap", "shampoo", "toothpaste",
	}
}

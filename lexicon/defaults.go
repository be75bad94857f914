package lexicon

// Built-in fallback lexicon, used when no precomputed vocabulary database is
// present. Deliberately small: real deployments build a full database with
// the vocabbuild tool.

var defaultVocabulary = []string{
	"burger",
	"burgers",
	"sushi",
	"pizza",
	"pasta",
	"biryani",
	"ramen",
	"tacos",
	"curry",
	"kebab",
	"chicken",
	"colombo",
	"new york",
	"san francisco",
	"london",
	"paris",
	"tokyo",
	"bangalore",
	"mumbai",
	"delhi",
}

// Food terms that edit-distance correction must never touch: they are close
// neighbors of common words and get mangled by general-purpose spellers.
var defaultProtected = []string{
	"biryani",
	"pho",
	"naan",
	"dosa",
	"idli",
	"roti",
	"thali",
	"kottu",
	"hoppers",
	"sambol",
	"dal",
	"poke",
	"bao",
	"udon",
	"soba",
	"gyoza",
	"ceviche",
	"arepa",
	"injera",
}

var defaultMisspellings = map[string]string{
	"chiken":   "chicken",
	"chikn":    "chicken",
	"berger":   "burger",
	"burgr":    "burger",
	"piza":     "pizza",
	"pizzza":   "pizza",
	"sushhi":   "sushi",
	"biriyani": "biryani",
	"colmobo":  "colombo",
	"colambo":  "colombo",
	"bangalor": "bangalore",
	"mumbay":   "mumbai",
}

var defaultSynonyms = map[string][][]string{
	"burger": {{"hamburger", "beefburger"}},
	"pizza":  {{"pizzas", "flatbread"}},
	"sushi":  {{"sashimi", "maki"}},
	"curry":  {{"curries", "masala"}},
	"tacos":  {{"taco", "taqueria"}},
}

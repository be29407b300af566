package config

// Built-in stopword lists per locale. Only words longer than two characters
// matter here: the tokenizer already drops shorter tokens.
var builtinStopwords = map[string][]string{
	"en": englishStopwords,
	"nl": dutchStopwords,
}

var englishStopwords = []string{
	"about", "above", "after", "again", "against", "all", "and", "any", "are",
	"because", "been", "before", "being", "below", "between", "both", "but",
	"can", "cannot", "could", "did", "does", "doing", "down", "during", "each",
	"few", "for", "from", "further", "had", "has", "have", "having", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "into", "its",
	"itself", "just", "more", "most", "myself", "nor", "not", "now", "off",
	"once", "only", "other", "our", "ours", "ourselves", "out", "over", "own",
	"same", "she", "should", "some", "such", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they", "this",
	"those", "through", "too", "under", "until", "very", "was", "were", "what",
	"when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"you", "your", "yours", "yourself", "yourselves",
}

var dutchStopwords = []string{
	"aan", "als", "bij", "dan", "dat", "die", "dit", "deze", "doch", "doen",
	"door", "dus", "een", "eens", "haar", "had", "heb", "hebben", "heeft",
	"hem", "het", "hier", "hij", "hoe", "hun", "iemand", "iets", "kan",
	"kon", "kunnen", "maar", "men", "met", "mij", "mijn", "moet", "naar",
	"niet", "nog", "omdat", "onder", "ons", "ook", "over",
	"reeds", "tegen", "toch", "toen", "tot", "uit", "uw", "van", "veel",
	"voor", "want", "waren", "was", "wat", "wel", "werd", "wezen", "wie",
	"wil", "worden", "wordt", "zal", "zelf", "zich", "zij", "zijn", "zoals",
	"zou", "zonder",
}

package recommend

import mapset "github.com/deckarep/golang-set/v2"

// Common English stop words removed before vectorization. Event copy is
// short ("Join us for an evening of..."), so glue words would otherwise
// dominate the document frequencies.
var stopwords = mapset.NewSet(
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "come", "could",
	"did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "get", "had", "has", "have", "having", "he", "her",
	"here", "hers", "him", "his", "how", "if", "in", "into", "is", "it",
	"its", "join", "just", "me", "more", "most", "my", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "ours",
	"out", "over", "own", "same", "she", "should", "so", "some", "such",
	"than", "that", "the", "their", "theirs", "them", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "us", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "you",
	"your", "yours",
)

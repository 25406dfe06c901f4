package scanner

// profanitySet is the fixed lookup used to divert profanity tokens out of
// the general word table. Lookup happens after lowercasing and
// punctuation trimming.
var profanitySet = makeSet([]string{
	"arse", "arsehole", "ass", "asses", "asshat", "asshole", "assholes",
	"bastard", "bastards", "bitch", "bitches", "bitchy", "bloody",
	"bollocks", "bullshit", "cock", "crap", "crappy", "cunt", "cunts",
	"damn", "damned", "damnit", "dammit", "dick", "dickhead", "dicks",
	"douche", "douchebag", "dumbass", "fuck", "fucked", "fucker",
	"fuckers", "fucking", "fucks", "goddamn", "goddammit", "hell",
	"horseshit", "jackass", "motherfucker", "motherfucking", "piss",
	"pissed", "prick", "pricks", "pussy", "screwed", "shit", "shite",
	"shithead", "shits", "shitty", "slut", "sluts", "twat", "twats",
	"wanker", "wankers", "whore", "whores",
})

func makeSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

package models

// FreqTable counts occurrences per exact token text.
type FreqTable map[string]int

func (t FreqTable) Inc(key string) {
	t[key]++
}

func (t FreqTable) Merge(other FreqTable) {
	for k, v := range other {
		t[k] += v
	}
}

// Accumulator is one aggregation scope: a guild, a DM channel, or the
// global bucket. Merge is additive and commutative, so batch completion
// order never changes the totals.
type Accumulator struct {
	Messages      int
	Words         int
	Chars         int
	Emotes        int
	Mentions      int
	FilesUploaded int

	WordFreq      FreqTable
	EmojiFreq     FreqTable
	ProfanityFreq FreqTable
	LinkFreq      FreqTable
	InviteFreq    FreqTable
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		WordFreq:      make(FreqTable),
		EmojiFreq:     make(FreqTable),
		ProfanityFreq: make(FreqTable),
		LinkFreq:      make(FreqTable),
		InviteFreq:    make(FreqTable),
	}
}

func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	a.Messages += other.Messages
	a.Words += other.Words
	a.Chars += other.Chars
	a.Emotes += other.Emotes
	a.Mentions += other.Mentions
	a.FilesUploaded += other.FilesUploaded
	a.WordFreq.Merge(other.WordFreq)
	a.EmojiFreq.Merge(other.EmojiFreq)
	a.ProfanityFreq.Merge(other.ProfanityFreq)
	a.LinkFreq.Merge(other.LinkFreq)
	a.InviteFreq.Merge(other.InviteFreq)
}

// Aggregate is the shared aggregation state. Workers build a private
// Aggregate per batch and merge it in under a single mutex; a message
// lands in exactly one guild or DM scope plus the global scope.
type Aggregate struct {
	Global     *Accumulator
	Histograms Histograms
	Guilds     map[string]*Accumulator
	DMs        map[string]*Accumulator
	// DMNames keeps the resolved display label per DM channel id.
	DMNames map[string]string
}

func NewAggregate() *Aggregate {
	return &Aggregate{
		Global:     NewAccumulator(),
		Histograms: NewHistograms(),
		Guilds:     make(map[string]*Accumulator),
		DMs:        make(map[string]*Accumulator),
		DMNames:    make(map[string]string),
	}
}

func (a *Aggregate) Guild(id string) *Accumulator {
	acc, ok := a.Guilds[id]
	if !ok {
		acc = NewAccumulator()
		a.Guilds[id] = acc
	}
	return acc
}

func (a *Aggregate) DM(id string) *Accumulator {
	acc, ok := a.DMs[id]
	if !ok {
		acc = NewAccumulator()
		a.DMs[id] = acc
	}
	return acc
}

func (a *Aggregate) Merge(other *Aggregate) {
	if other == nil {
		return
	}
	a.Global.Merge(other.Global)
	a.Histograms.Merge(&other.Histograms)
	for id, acc := range other.Guilds {
		a.Guild(id).Merge(acc)
	}
	for id, acc := range other.DMs {
		a.DM(id).Merge(acc)
	}
	for id, name := range other.DMNames {
		a.DMNames[id] = name
	}
}

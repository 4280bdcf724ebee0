package domain

// PartOfSpeech is a universal part-of-speech tag as produced by the tokenizers.
type PartOfSpeech string

const (
	PosAdjective         PartOfSpeech = "ADJ"
	PosAdposition        PartOfSpeech = "ADP"
	PosAdverb            PartOfSpeech = "ADV"
	PosAuxiliary         PartOfSpeech = "AUX"
	PosConjunction       PartOfSpeech = "CONJ"
	PosCoordinatingConj  PartOfSpeech = "CCONJ"
	PosDeterminer        PartOfSpeech = "DET"
	PosInterjection      PartOfSpeech = "INTJ"
	PosNoun              PartOfSpeech = "NOUN"
	PosNumeral           PartOfSpeech = "NUM"
	PosParticle          PartOfSpeech = "PART"
	PosPronoun           PartOfSpeech = "PRON"
	PosProperNoun        PartOfSpeech = "PROPN"
	PosSubordinatingConj PartOfSpeech = "SCONJ"
	PosSymbol            PartOfSpeech = "SYM"
	PosVerb              PartOfSpeech = "VERB"
	PosOther             PartOfSpeech = "X"
	PosSpace             PartOfSpeech = "SPACE"
)

// AllPartsOfSpeech lists the tags accepted for dictionary entries.
var AllPartsOfSpeech = []PartOfSpeech{
	PosAdjective, PosAdposition, PosAdverb, PosAuxiliary, PosConjunction,
	PosCoordinatingConj, PosDeterminer, PosInterjection, PosNoun, PosNumeral,
	PosParticle, PosPronoun, PosProperNoun, PosSubordinatingConj, PosSymbol,
	PosVerb, PosOther, PosSpace,
}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	for _, v := range AllPartsOfSpeech {
		if p == v {
			return true
		}
	}
	return false
}

// Gender is the grammatical gender of a noun-like dictionary entry.
type Gender string

const (
	GenderFeminine  Gender = "f"
	GenderMasculine Gender = "m"
	GenderNeuter    Gender = "n"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderFeminine, GenderMasculine, GenderNeuter:
		return true
	}
	return false
}

// Language is an ISO 639-1 code of a supported source or target language.
type Language string

const (
	LangFrench   Language = "fr"
	LangFinnish  Language = "fi"
	LangItalian  Language = "it"
	LangEnglish  Language = "en"
	LangJapanese Language = "ja"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LangFrench, LangFinnish, LangItalian, LangEnglish, LangJapanese:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

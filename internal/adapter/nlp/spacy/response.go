package spacy

// parseRequest is the body of POST {base}/parse.
type parseRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// parseResponse mirrors the token attributes exposed by a spaCy Doc.
type parseResponse struct {
	Tokens []apiToken `json:"tokens"`
}

type apiToken struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	IsAlpha bool   `json:"is_alpha"`
}

type apiError struct {
	Detail string `json:"detail"`
}

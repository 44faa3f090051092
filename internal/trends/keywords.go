// Package trends extracts trending keywords from free-text job descriptions,
// either stored qualifications or scraped search snippets.
package trends

import "sort"

// techKeywords is the flat dictionary the trend analysis recognizes as
// technology terms. Unlike the categorized extraction dictionaries, matching
// here is plain substring over cleaned text.
var techKeywords = map[string]struct{}{
	// Programming languages
	"python": {}, "java": {}, "javascript": {}, "typescript": {}, "c++": {},
	"c#": {}, "go": {}, "rust": {}, "kotlin": {}, "swift": {}, "scala": {},
	"ruby": {}, "php": {}, "r": {}, "matlab": {},
	// ML/AI frameworks
	"tensorflow": {}, "pytorch": {}, "keras": {}, "scikit-learn": {},
	"pandas": {}, "numpy": {}, "jupyter": {}, "mlflow": {}, "huggingface": {},
	"transformers": {}, "opencv": {},
	// Cloud and DevOps
	"aws": {}, "azure": {}, "gcp": {}, "docker": {}, "kubernetes": {},
	"jenkins": {}, "ci/cd": {}, "terraform": {}, "ansible": {}, "git": {},
	"github": {}, "gitlab": {},
	// Databases
	"sql": {}, "postgresql": {}, "mysql": {}, "mongodb": {}, "redis": {},
	"elasticsearch": {}, "cassandra": {}, "dynamodb": {}, "snowflake": {},
	// Web frameworks
	"react": {}, "angular": {}, "vue": {}, "node.js": {}, "django": {},
	"flask": {}, "fastapi": {}, "spring": {}, "express": {}, "next.js": {},
	"nuxt": {},
	// Big data
	"spark": {}, "hadoop": {}, "kafka": {}, "airflow": {}, "databricks": {},
	// ML concepts
	"machine learning": {}, "deep learning": {}, "neural networks": {},
	"nlp": {}, "computer vision": {}, "reinforcement learning": {}, "llm": {},
	"gpt": {}, "transformer": {}, "bert": {}, "cnn": {}, "rnn": {}, "lstm": {},
	// Software engineering
	"agile": {}, "scrum": {}, "microservices": {}, "rest api": {},
	"graphql": {}, "test-driven development": {}, "tdd": {},
	"code review": {}, "pair programming": {},
}

// techKeywordList is techKeywords in sorted order, for deterministic phrase
// scans.
var techKeywordList = func() []string {
	list := make([]string, 0, len(techKeywords))
	for kw := range techKeywords {
		list = append(list, kw)
	}
	sort.Strings(list)
	return list
}()

// excludeWords filters non-technical filler from the tech keyword report.
var excludeWords = map[string]struct{}{
	"experience": {}, "knowledge": {}, "strong": {}, "required": {}, "must": {},
	"have": {}, "with": {}, "and": {}, "the": {}, "for": {}, "are": {},
	"will": {}, "this": {}, "that": {}, "from": {}, "their": {}, "would": {},
	"should": {}, "could": {}, "more": {}, "than": {}, "other": {}, "some": {},
	"such": {}, "these": {}, "those": {}, "about": {}, "into": {},
	"through": {}, "during": {}, "including": {}, "familiarity": {},
	"understanding": {}, "proficiency": {}, "expertise": {}, "skills": {},
	"ability": {}, "candidate": {}, "position": {}, "role": {}, "team": {},
	"work": {}, "looking": {}, "seeking": {}, "hiring": {}, "join": {},
	"develop": {}, "build": {}, "create": {}, "design": {}, "implement": {},
	"manage": {}, "lead": {}, "support": {},
}

// stopWords is a standard English stop-word list. Cleaning strips
// apostrophes before tokenizing, so only plain forms appear here.
var stopWords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {},
	"ours": {}, "ourselves": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {}, "he": {}, "him": {}, "his": {},
	"himself": {}, "she": {}, "her": {}, "hers": {}, "herself": {},
	"it": {}, "its": {}, "itself": {}, "they": {}, "them": {}, "their": {},
	"theirs": {}, "themselves": {}, "what": {}, "which": {}, "who": {},
	"whom": {}, "this": {}, "that": {}, "these": {}, "those": {}, "am": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "having": {}, "do": {},
	"does": {}, "did": {}, "doing": {}, "a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "if": {}, "or": {}, "because": {}, "as": {},
	"until": {}, "while": {}, "of": {}, "at": {}, "by": {}, "for": {},
	"with": {}, "about": {}, "against": {}, "between": {}, "into": {},
	"through": {}, "during": {}, "before": {}, "after": {}, "above": {},
	"below": {}, "to": {}, "from": {}, "up": {}, "down": {}, "in": {},
	"out": {}, "on": {}, "off": {}, "over": {}, "under": {}, "again": {},
	"further": {}, "then": {}, "once": {}, "here": {}, "there": {},
	"when": {}, "where": {}, "why": {}, "how": {}, "all": {}, "any": {},
	"both": {}, "each": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "no": {}, "nor": {}, "not": {}, "only": {},
	"own": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {},
	"can": {}, "will": {}, "just": {}, "don": {}, "should": {}, "now": {},
}

// Package skills extracts categorized skills from job qualification text by
// matching against static keyword dictionaries.
package skills

// CategoryOther collects pattern-extracted technologies that fit no
// dictionary category.
const CategoryOther = "other_technologies"

// defaultCategories are the built-in skill dictionaries. The dictionary form
// of a keyword is its canonical reported form.
var defaultCategories = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "cpp", "go", "golang",
		"rust", "kotlin", "swift", "scala", "ruby", "php", "r", "matlab", "sql",
		"html", "css", "bash", "shell", "powershell",
	},
	"ml_frameworks": {
		"tensorflow", "pytorch", "keras", "scikit-learn", "scikit", "sklearn",
		"pandas", "numpy", "jupyter", "mlflow", "huggingface", "transformers",
		"opencv", "xgboost", "lightgbm", "catboost",
	},
	"databases": {
		"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
		"cassandra", "dynamodb", "snowflake", "oracle", "sqlite", "neo4j",
	},
	"cloud_platforms": {
		"aws", "amazon web services", "azure", "gcp", "google cloud",
		"kubernetes", "docker", "terraform", "ansible", "jenkins",
	},
	"web_frameworks": {
		"react", "angular", "vue", "node.js", "nodejs", "django", "flask",
		"fastapi", "spring", "express", "next.js", "nuxt", "laravel",
	},
	"big_data_tools": {
		"spark", "hadoop", "kafka", "airflow", "databricks", "snowflake",
		"presto", "hive", "storm",
	},
	"ml_concepts": {
		"machine learning", "deep learning", "neural networks", "nlp",
		"natural language processing", "computer vision", "reinforcement learning",
		"llm", "large language models", "gpt", "transformer", "bert", "cnn",
		"rnn", "lstm", "gan", "svm", "random forest", "gradient boosting",
	},
	"software_engineering": {
		"agile", "scrum", "microservices", "rest api", "graphql", "api",
		"test-driven development", "tdd", "code review", "pair programming",
		"ci/cd", "devops", "git", "github", "gitlab", "jira", "confluence",
	},
	"education": {
		"bs", "bachelor", "master", "ms", "phd", "doctorate", "degree",
		"computer science", "engineering", "mathematics", "statistics",
		"data science", "machine learning",
	},
}

// categoryOrder is the canonical presentation order of the built-in
// categories. Custom categories from a config file sort after these;
// other_technologies always renders last.
var categoryOrder = []string{
	"programming_languages",
	"ml_frameworks",
	"databases",
	"cloud_platforms",
	"web_frameworks",
	"big_data_tools",
	"ml_concepts",
	"software_engineering",
	"education",
}

// defaultExcludeWords filters common non-technical words out of extraction
// results.
var defaultExcludeWords = []string{
	"experience", "knowledge", "strong", "required", "must", "have", "with",
	"and", "the", "for", "are", "will", "this", "that", "from", "their",
	"would", "should", "could", "more", "than", "other", "some", "such",
	"these", "those", "about", "into", "through", "during", "including",
	"familiarity", "understanding", "proficiency", "expertise", "skills",
	"ability", "candidate", "position", "role", "team", "work", "looking",
	"seeking", "hiring", "join", "develop", "build", "create", "design",
	"implement", "manage", "lead", "support", "related", "field", "years",
}

// displayNames maps category keys to their console headings.
var displayNames = map[string]string{
	"programming_languages": "Programming Languages",
	"ml_frameworks":         "ML/AI Frameworks",
	"databases":             "Databases",
	"cloud_platforms":       "Cloud Platforms & DevOps",
	"web_frameworks":        "Web Frameworks",
	"big_data_tools":        "Big Data Tools",
	"ml_concepts":           "ML Concepts & Domains",
	"software_engineering":  "Software Engineering Practices",
	"education":             "Education Requirements",
	CategoryOther:           "Other Technologies",
}

// DisplayName returns the console heading for a category, falling back to
// title-casing the key for custom categories.
func DisplayName(category string) string {
	if name, ok := displayNames[category]; ok {
		return name
	}
	return TitleCase(category)
}

package analyzer

import (
	"regexp"
	"strings"
)

// The two keyword vocabularies are calibration constants, not configuration.
// skillVocabulary is the broad technology list scanned over the whole resume;
// contextVocabulary is the shorter role/domain list applied to the job
// context and deliberately includes non-technical terms (leadership, sales,
// marketing) that must never surface as resume skills. They are kept as two
// distinct lists on purpose.

var skillVocabulary = []string{
	"react", "vue", "angular", "node", "express", "python", "java", `c\+\+`, "go", "rust",
	"javascript", "typescript", "web", "mobile", "backend", "frontend", `full\s*stack`,
	"devops", "aws", "azure", "gcp", "kubernetes", "docker", "sql", "mongodb", "mysql",
	"postgresql", "postgres", "firebase", "redis", "elasticsearch", "rabbitmq", "kafka",
	"graphql", "rest", "api", "microservices", "agile", "scrum", "git", "github", "gitlab",
	"jenkins", `ci/cd`, "linux", "windows", "mac", "html", "css", "scss", "sass", "webpack",
	"vite", "npm", "yarn", "jest", "mocha", "selenium", "junit", "django", "flask",
	"fastapi", "spring", "springboot", "hibernate", "maven", "gradle", "bash", "shell",
	"terraform", "pulumi", "cloudformation", "bicep", `machine\s*learning`, "ml", "ai",
	`artificial\s*intelligence`, "pytorch", "tensorflow", "keras", "scikit-learn",
	"sklearn", "pandas", "numpy", "matplotlib", "seaborn", "nlp",
	`natural\s*language\s*processing`, `computer\s*vision`, "cv", "bert", "transformer",
	"llm", `large\s*language\s*model`, "mlops", "sagemaker", "mlflow", "kubeflow", "dvc",
	"wandb", `data\s*science`, `data\s*scientist`, `reinforcement\s*learning`,
	`deep\s*learning`, `neural\s*networks`, "cnn", "rnn", "lstm", "xgboost", "lightgbm",
	"catboost", "statistics", "probability", "r", "julia", "scala", "spark", "hadoop",
	"hive", "airflow",
}

var contextVocabulary = []string{
	"react", "vue", "angular", "node", "python", "java", `c\+\+`, "go", "rust",
	"javascript", "typescript", "web", "mobile", "backend", "frontend", `full\s*stack`,
	"devops", "aws", "azure", "gcp", "kubernetes", "docker", "sql", "mongodb", "database",
	"api", "rest", "graphql", "agile", "scrum", "leadership", "management", "sales",
	"marketing", "product", "design", "ui", "ux", "ml", "ai", `machine\s*learning`,
	`deep\s*learning`, "nlp", "cv", "data", "analytics", "cloud", "infrastructure",
}

// actionVerbs flags achievement lines in Analyze.
const actionVerbs = `led|built|developed|designed|implemented|created|optimized|improved|increased|reduced|managed|launched|delivered|scaled|automated|achieved|accelerated|enhanced|transformed|pioneered|spearheaded|drove|streamlined|established|restructured|oversaw|trained|deployed|evaluated|fine-tuned|collected|scraped|modeled|engineered|architected`

// relevanceVerbs is the shorter verb list that boosts a line's relevance score.
const relevanceVerbs = `led|built|developed|designed|implemented|created|optimized|improved|increased|reduced|managed|trained|deployed|modeled|architected`

var (
	skillRe   = regexp.MustCompile(`(?i)\b(` + strings.Join(skillVocabulary, "|") + `)\b`)
	contextRe = regexp.MustCompile(`(?i)\b(` + strings.Join(contextVocabulary, "|") + `)\b`)

	actionVerbRe    = regexp.MustCompile(`(?i)\b(` + actionVerbs + `)\b`)
	relevanceVerbRe = regexp.MustCompile(`(?i)\b(` + relevanceVerbs + `)\b`)

	yearRe  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	numRe   = regexp.MustCompile(`(?i)\d{2,}|%|\byears?\b`)
	quantRe = regexp.MustCompile(`(?i)\d+%|\$\d+|x\d+|\d+\s*(years?|months?|projects?|team|people|accuracy|f1|precision|recall|latency|throughput|parameters|layers)|increase|decrease|growth|revenue|users|customers`)
	digitRe = regexp.MustCompile(`\d`)
)

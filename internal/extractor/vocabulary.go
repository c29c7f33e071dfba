package extractor

// ReferenceVocabulary is the fixed keyword list scanned by the fallback
// strategy. Entries are lowercase and at least three characters long so that
// bare substring containment does not light up on stray letters.
var ReferenceVocabulary = []string{
	"python", "java", "javascript", "html", "css", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "spring", "hibernate", "sql",
	"mysql", "postgresql", "mongodb", "nosql", "aws", "azure", "gcp",
	"docker", "kubernetes", "jenkins", "git", "github", "gitlab", "ci/cd",
	"agile", "scrum", "jira", "confluence", "rest api", "graphql", "microservices",
	"machine learning", "artificial intelligence", "data science", "big data",
	"hadoop", "spark", "tensorflow", "pytorch", "keras", "nlp", "computer vision",
	"devops", "sre", "cloud computing", "serverless", "linux", "unix", "bash",
	"powershell", "c++", "ruby", "php", "swift", "kotlin", "golang", "rust",
	"typescript", "jquery", "bootstrap", "sass", "less", "webpack", "babel",
	"redux", "vuex", "next.js", "nuxt.js", "gatsby", "rest",
	"oauth", "jwt", "authentication", "authorization", "security", "encryption",
	"testing", "unit testing", "integration testing", "e2e testing", "jest",
	"mocha", "chai", "selenium", "cypress", "puppeteer", "responsive design",
	"mobile development", "ios", "android", "react native", "flutter", "xamarin",
}

// DefaultSkills is returned when no strategy finds anything; callers never
// receive an empty skill set.
var DefaultSkills = []string{"python", "javascript", "html", "css", "sql"}

package catalog

// defaultSkillEntries is the built-in skill dictionary. Aliases are lowercase
// and matched as substrings of the lowered input text.
var defaultSkillEntries = []SkillEntry{
	// Programming languages
	{Name: "Java", Aliases: []string{"java", "spring boot", "spring framework"}},
	{Name: "Python", Aliases: []string{"python", "django", "flask", "fastapi"}},
	{Name: "JavaScript", Aliases: []string{"javascript", "js", "node.js", "nodejs", "typescript"}},
	{Name: "C#", Aliases: []string{"c#", "csharp", ".net", "dotnet"}},
	{Name: "Go", Aliases: []string{"go", "golang"}},
	{Name: "Rust", Aliases: []string{"rust"}},
	{Name: "PHP", Aliases: []string{"php", "laravel", "symfony"}},
	{Name: "Ruby", Aliases: []string{"ruby", "rails", "ruby on rails"}},

	// Frontend technologies
	{Name: "React", Aliases: []string{"react", "reactjs", "jsx"}},
	{Name: "Vue.js", Aliases: []string{"vue", "vuejs", "vue.js"}},
	{Name: "Angular", Aliases: []string{"angular", "angularjs"}},
	{Name: "Next.js", Aliases: []string{"next.js", "nextjs"}},
	{Name: "HTML/CSS", Aliases: []string{"html", "css", "scss", "sass", "less"}},

	// Backend & APIs
	{Name: "REST APIs", Aliases: []string{"rest", "api", "restful"}},
	{Name: "GraphQL", Aliases: []string{"graphql"}},
	{Name: "Microservices", Aliases: []string{"microservices", "microservice"}},
	{Name: "Serverless", Aliases: []string{"serverless", "lambda", "azure functions"}},

	// Databases
	{Name: "MySQL", Aliases: []string{"mysql"}},
	{Name: "PostgreSQL", Aliases: []string{"postgresql", "postgres"}},
	{Name: "MongoDB", Aliases: []string{"mongodb", "mongo"}},
	{Name: "Redis", Aliases: []string{"redis"}},
	{Name: "Oracle", Aliases: []string{"oracle"}},
	{Name: "SQL Server", Aliases: []string{"sql server", "mssql"}},

	// Cloud platforms
	{Name: "AWS", Aliases: []string{"aws", "amazon web services"}},
	{Name: "Azure", Aliases: []string{"azure", "microsoft azure"}},
	{Name: "Google Cloud", Aliases: []string{"gcp", "google cloud", "google cloud platform"}},
	{Name: "Docker", Aliases: []string{"docker", "containerization"}},
	{Name: "Kubernetes", Aliases: []string{"kubernetes", "k8s"}},

	// DevOps & CI/CD
	{Name: "Jenkins", Aliases: []string{"jenkins"}},
	{Name: "GitLab CI", Aliases: []string{"gitlab ci", "gitlab"}},
	{Name: "GitHub Actions", Aliases: []string{"github actions", "github ci"}},
	{Name: "Terraform", Aliases: []string{"terraform"}},
	{Name: "Ansible", Aliases: []string{"ansible"}},

	// Testing
	{Name: "Unit Testing", Aliases: []string{"unit test", "testing", "junit", "pytest"}},
	{Name: "Integration Testing", Aliases: []string{"integration test", "e2e", "end-to-end"}},
	{Name: "Test Automation", Aliases: []string{"test automation", "selenium", "cypress"}},

	// Project management
	{Name: "Agile", Aliases: []string{"agile", "scrum", "sprint"}},
	{Name: "JIRA", Aliases: []string{"jira"}},
	{Name: "Confluence", Aliases: []string{"confluence"}},
	{Name: "Team Leadership", Aliases: []string{"lead", "leadership", "team lead", "mentor"}},

	// Security
	{Name: "Security", Aliases: []string{"security", "cybersecurity", "penetration testing"}},
	{Name: "Authentication", Aliases: []string{"authentication", "oauth", "jwt", "saml"}},

	// AI/ML
	{Name: "Machine Learning", Aliases: []string{"machine learning", "ml", "tensorflow", "pytorch"}},
	{Name: "Data Science", Aliases: []string{"data science", "pandas", "numpy", "scikit-learn"}},
	{Name: "AI", Aliases: []string{"artificial intelligence", "ai", "deep learning"}},
}

package catalog

// defaultDirectRoles is the built-in direct-fit role table. Order matters: it
// is the tie-break for equal match scores.
var defaultDirectRoles = []DirectRole{
	{
		Name:     "Backend Developer",
		Skills:   []string{"Java", "Python", "REST APIs", "Microservices", "MySQL", "PostgreSQL"},
		Keywords: []string{"backend", "server", "api", "database"},
		Salary:   "$70,000 - $120,000",
		Growth:   GrowthHigh,
	},
	{
		Name:     "Frontend Developer",
		Skills:   []string{"React", "Vue.js", "Angular", "JavaScript", "HTML/CSS"},
		Keywords: []string{"frontend", "ui", "user interface", "client-side"},
		Salary:   "$60,000 - $110,000",
		Growth:   GrowthHigh,
	},
	{
		Name:     "Full Stack Developer",
		Skills:   []string{"React", "Node.js", "JavaScript", "REST APIs", "MySQL", "PostgreSQL"},
		Keywords: []string{"full stack", "fullstack", "both frontend and backend"},
		Salary:   "$75,000 - $130,000",
		Growth:   GrowthVeryHigh,
	},
	{
		Name:     "DevOps Engineer",
		Skills:   []string{"AWS", "Docker", "Kubernetes", "Jenkins", "Terraform"},
		Keywords: []string{"devops", "deployment", "ci/cd", "infrastructure"},
		Salary:   "$80,000 - $140,000",
		Growth:   GrowthVeryHigh,
	},
	{
		Name:     "Cloud Engineer",
		Skills:   []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes"},
		Keywords: []string{"cloud", "aws", "azure", "gcp"},
		Salary:   "$85,000 - $150,000",
		Growth:   GrowthVeryHigh,
	},
	{
		Name:     "Software Architect",
		Skills:   []string{"Microservices", "System Design", "Team Leadership", "REST APIs"},
		Keywords: []string{"architect", "architecture", "design", "senior"},
		Salary:   "$120,000 - $200,000",
		Growth:   GrowthHigh,
	},
	{
		Name:     "Data Engineer",
		Skills:   []string{"Python", "SQL", "AWS", "Data Pipelines", "ETL"},
		Keywords: []string{"data", "etl", "pipeline", "analytics"},
		Salary:   "$75,000 - $130,000",
		Growth:   GrowthVeryHigh,
	},
	{
		Name:     "QA Engineer",
		Skills:   []string{"Testing", "Test Automation", "Selenium", "Agile"},
		Keywords: []string{"qa", "testing", "quality", "test automation"},
		Salary:   "$55,000 - $95,000",
		Growth:   GrowthMedium,
	},
	{
		Name:     "Tech Lead",
		Skills:   []string{"Team Leadership", "Agile", "Code Review", "Architecture"},
		Keywords: []string{"lead", "leadership", "mentor", "senior"},
		Salary:   "$100,000 - $160,000",
		Growth:   GrowthHigh,
	},
	{
		Name:     "Mobile Developer",
		Skills:   []string{"React Native", "Flutter", "iOS", "Android"},
		Keywords: []string{"mobile", "ios", "android", "react native", "flutter"},
		Salary:   "$65,000 - $115,000",
		Growth:   GrowthHigh,
	},
}

// defaultTrendingRoles is the built-in trending-role table. The first two
// surviving roles in this order are returned; AI Engineer and Cybersecurity
// Specialist double as the fixed fallback pair.
var defaultTrendingRoles = []TrendingRole{
	{
		Name:           "AI Engineer",
		ExistingSkills: []string{"Python", "AWS", "Cloud Platforms"},
		MissingSkills:  []string{"Machine Learning", "TensorFlow", "PyTorch", "Data Science"},
		Salary:         "$90,000 - $160,000",
		Growth:         GrowthExplosive,
		LearningPath:   []string{"Python ML Libraries", "Deep Learning", "AI Frameworks", "Statistics"},
	},
	{
		Name:           "Cybersecurity Specialist",
		ExistingSkills: []string{"System Administration", "Networking", "Security"},
		MissingSkills:  []string{"Penetration Testing", "Security Tools", "Compliance", "Risk Assessment"},
		Salary:         "$70,000 - $130,000",
		Growth:         GrowthVeryHigh,
		LearningPath:   []string{"Security Certifications", "Penetration Testing", "Security Tools", "Compliance"},
	},
	{
		Name:           "Blockchain Developer",
		ExistingSkills: []string{"JavaScript", "Backend Development", "APIs"},
		MissingSkills:  []string{"Solidity", "Smart Contracts", "Web3", "Cryptography"},
		Salary:         "$80,000 - $150,000",
		Growth:         GrowthHigh,
		LearningPath:   []string{"Blockchain Fundamentals", "Solidity", "Smart Contracts", "Web3"},
	},
	{
		Name:           "Cloud Security Engineer",
		ExistingSkills: []string{"AWS", "Cloud Platforms", "Security"},
		MissingSkills:  []string{"Cloud Security Tools", "Compliance", "Identity Management", "Security Monitoring"},
		Salary:         "$85,000 - $145,000",
		Growth:         GrowthVeryHigh,
		LearningPath:   []string{"Cloud Security", "Compliance", "Security Tools", "Identity Management"},
	},
	{
		Name:           "Data Scientist",
		ExistingSkills: []string{"Python", "SQL", "Analytics"},
		MissingSkills:  []string{"Machine Learning", "Statistics", "Data Visualization", "Big Data Tools"},
		Salary:         "$75,000 - $140,000",
		Growth:         GrowthVeryHigh,
		LearningPath:   []string{"Statistics", "Machine Learning", "Data Visualization", "Big Data"},
	},
}

// defaultLearningPaths registers step sequences keyed by the exact
// missing-skill label the remote service reports.
var defaultLearningPaths = []LearningPath{
	{Skill: "Real-time operating systems (RTOS)", Steps: []string{"Learn RTOS concepts", "Practice with FreeRTOS", "Build embedded projects"}},
	{Skill: "Microcontroller programming", Steps: []string{"Study microcontroller architecture", "Practice with Arduino/STM32", "Learn assembly language"}},
	{Skill: "Hardware debugging", Steps: []string{"Learn oscilloscope usage", "Practice with logic analyzers", "Study circuit analysis"}},
	{Skill: "Backend frameworks", Steps: []string{"Learn Node.js or Python/Django", "Practice API development", "Study database design"}},
	{Skill: "Cloud computing", Steps: []string{"Start with AWS basics", "Learn containerization", "Practice deployment"}},
	{Skill: "Database management", Steps: []string{"Learn SQL fundamentals", "Practice with PostgreSQL/MySQL", "Study NoSQL databases"}},
	{Skill: "API design", Steps: []string{"Learn REST principles", "Practice with OpenAPI", "Study GraphQL"}},
}

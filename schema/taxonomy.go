package schema

// CategoryMarkers holds the two independent attribute sets attached to a
// taxonomy category: free-text keywords for epic classification, and
// file/path markers for expertise detection. Defining both on the same
// category keeps the two components comparable by name.
type CategoryMarkers struct {
	// Keywords are literal phrases matched against lower-cased epic text.
	Keywords []string

	// Extensions are file extensions (without dot) worth +2 each.
	Extensions []string

	// ConfigFiles are configuration-file markers worth +5 each.
	ConfigFiles []string

	// PathMarkers are directory fragments worth +3 each.
	PathMarkers []string
}

// Taxonomy is the single shared definition of every known category.
// The epic classifier reads Keywords; the expertise detector reads the
// file-oriented sets. Categories without file markers (Full Stack) only
// participate in text classification.
var Taxonomy = map[Category]CategoryMarkers{
	CategoryMobile: {
		Keywords: []string{
			"mobile app", "ios", "android", "flutter", "react native",
			"swift", "kotlin", "mobile ui", "app store", "google play",
			"mobile", "smartphone", "tablet",
		},
		Extensions:  []string{"swift", "kt", "java", "dart", "m", "h", "xib", "storyboard"},
		ConfigFiles: []string{"pubspec.yaml", "build.gradle", "Podfile", "AndroidManifest.xml", "Info.plist", "app.json"},
		PathMarkers: []string{"ios/", "android/", "lib/", "flutter/"},
	},
	CategoryFrontend: {
		Keywords: []string{
			"web app", "dashboard", "ui", "user interface", "frontend",
			"react", "vue", "angular", "responsive design", "web components",
			"website", "web page", "client-side", "browser",
		},
		Extensions:  []string{"jsx", "tsx", "vue", "svelte", "html", "css", "scss", "sass", "less"},
		ConfigFiles: []string{"package.json", "vite.config", "webpack.config", "next.config", "nuxt.config", "tailwind.config", ".babelrc", "tsconfig.json"},
		PathMarkers: []string{"src/components/", "src/pages/", "public/", "styles/", "assets/"},
	},
	CategoryBackend: {
		Keywords: []string{
			"api", "backend", "server", "microservice", "rest", "graphql",
			"database integration", "authentication", "authorization",
			"server-side", "endpoint", "web service",
		},
		Extensions:  []string{"py", "rb", "php", "go", "rs", "java", "cs", "ex", "exs"},
		ConfigFiles: []string{"requirements.txt", "Gemfile", "composer.json", "go.mod", "Cargo.toml", "pom.xml", "build.gradle", "mix.exs"},
		PathMarkers: []string{"api/", "server/", "backend/", "controllers/", "models/", "services/"},
	},
	CategoryDevOps: {
		Keywords: []string{
			"deployment", "ci/cd", "infrastructure", "cloud", "docker",
			"kubernetes", "terraform", "monitoring", "logging", "devops",
			"pipeline", "automation",
		},
		Extensions:  []string{"yml", "yaml", "tf", "hcl", "sh", "bash", "dockerfile"},
		ConfigFiles: []string{"Dockerfile", "docker-compose.yml", ".gitlab-ci.yml", "Jenkinsfile", "terraform.tf", "ansible.yml", "kubernetes.yml", "k8s.yml", ".github/workflows"},
		PathMarkers: []string{".github/", "deploy/", "infrastructure/", "terraform/", "k8s/", "helm/"},
	},
	CategoryDataML: {
		Keywords: []string{
			"analytics", "machine learning", "ai", "data processing",
			"prediction", "recommendation", "data pipeline", "ml model",
			"artificial intelligence", "data science", "neural network",
		},
		Extensions:  []string{"ipynb", "py", "r", "rmd", "jl"},
		ConfigFiles: []string{"requirements.txt", "environment.yml", "setup.py", "pyproject.toml"},
		PathMarkers: []string{"notebooks/", "data/", "models/", "training/", "datasets/"},
	},
	CategoryDatabase: {
		Keywords: []string{
			"database", "sql", "data model", "schema", "migration",
			"query optimization", "data migration", "database design",
			"nosql", "mongodb", "postgresql", "mysql",
		},
		Extensions:  []string{"sql", "prisma", "graphql", "gql"},
		ConfigFiles: []string{"prisma/schema.prisma", "knexfile.js", "sequelize.config.js", "typeorm.config"},
		PathMarkers: []string{"migrations/", "seeds/", "schema/", "database/"},
	},
	CategoryGameDev: {
		Keywords: []string{
			"game", "unity", "unreal", "game engine", "3d", "physics",
			"game mechanics", "gameplay", "gaming",
		},
		Extensions:  []string{"cs", "cpp", "c", "lua", "gd", "gdscript"},
		ConfigFiles: []string{"project.godot", ".uproject", ".unity"},
		PathMarkers: []string{"Assets/", "Scripts/", "Scenes/", "Prefabs/"},
	},
	CategoryFullStack: {
		Keywords: []string{"full stack", "end-to-end", "complete system", "fullstack"},
	},
}

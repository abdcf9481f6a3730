package techstack

// npmDependencies maps package.json dependency names to technology tags.
var npmDependencies = map[string]string{
	"react":             "React",
	"react-dom":         "React",
	"next":              "Next.js",
	"vue":               "Vue.js",
	"nuxt":              "Nuxt",
	"svelte":            "Svelte",
	"@angular/core":     "Angular",
	"express":           "Express",
	"fastify":           "Fastify",
	"@nestjs/core":      "NestJS",
	"koa":               "Koa",
	"typescript":        "TypeScript",
	"jest":              "Jest",
	"vitest":            "Vitest",
	"mocha":             "Mocha",
	"webpack":           "webpack",
	"vite":              "Vite",
	"esbuild":           "esbuild",
	"tailwindcss":       "Tailwind CSS",
	"styled-components": "styled-components",
	"prisma":            "Prisma",
	"@prisma/client":    "Prisma",
	"mongoose":          "MongoDB",
	"pg":                "PostgreSQL",
	"mysql2":            "MySQL",
	"redis":             "Redis",
	"ioredis":           "Redis",
	"graphql":           "GraphQL",
	"electron":          "Electron",
	"react-native":      "React Native",
	"expo":              "React Native",
	"@storybook/react":  "Storybook",
	"eslint":            "ESLint",
}

// markerFiles maps manifest/config filenames to one technology tag each.
var markerFiles = map[string]string{
	"tsconfig.json":       "TypeScript",
	"go.mod":              "Go",
	"requirements.txt":    "Python",
	"pyproject.toml":      "Python",
	"Pipfile":             "Python",
	"Cargo.toml":          "Rust",
	"Gemfile":             "Ruby",
	"pom.xml":             "Java",
	"build.gradle":        "Gradle",
	"build.gradle.kts":    "Kotlin",
	"composer.json":       "PHP",
	"mix.exs":             "Elixir",
	"pubspec.yaml":        "Dart",
	"CMakeLists.txt":      "C++",
	"Dockerfile":          "Docker",
	"docker-compose.yml":  "Docker Compose",
	"Makefile":            "Make",
	".terraform.lock.hcl": "Terraform",
}

// goModules maps Go module path prefixes to technology tags.
var goModules = map[string]string{
	"github.com/gin-gonic/gin":            "Gin",
	"github.com/labstack/echo":            "Echo",
	"github.com/gofiber/fiber":            "Fiber",
	"github.com/go-chi/chi":               "chi",
	"gorm.io/gorm":                        "GORM",
	"entgo.io/ent":                        "Ent",
	"github.com/jackc/pgx":                "PostgreSQL",
	"go.mongodb.org/mongo-driver":         "MongoDB",
	"github.com/redis/go-redis":           "Redis",
	"google.golang.org/grpc":              "gRPC",
	"github.com/spf13/cobra":              "Cobra",
	"k8s.io/client-go":                    "Kubernetes",
	"github.com/aws/aws-sdk-go":           "AWS",
	"github.com/aws/aws-sdk-go-v2":        "AWS",
	"cloud.google.com/go":                 "Google Cloud",
	"github.com/prometheus/client_golang": "Prometheus",
	"go.temporal.io/sdk":                  "Temporal",
}

package dealerdesk_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestModuleDependencies_JWTPresent(t *testing.T) {
	testModulePresence(t, "github.com/simp-lee/jwt")
}

func TestModuleDependencies_LoggerPresent(t *testing.T) {
	testModulePresence(t, "github.com/simp-lee/logger")
}

func TestModuleDependencies_LRUPresent(t *testing.T) {
	testModulePresence(t, "github.com/hashicorp/golang-lru/v2")
}

func TestModuleDependencies_CronPresent(t *testing.T) {
	testModulePresence(t, "github.com/robfig/cron/v3")
}

func TestModuleDependencies_XCryptoPresent(t *testing.T) {
	testModulePresence(t, "golang.org/x/crypto")
}

// The pagination types live in internal/domain; the standalone pagination
// module must not creep back in as a dependency.
func TestNoExternalPaginationModule(t *testing.T) {
	t.Run("happy_repo_has_no_pagination_import", func(t *testing.T) {
		matches, err := findPaginationImports(".")
		if err != nil {
			t.Fatalf("scan repository: %v", err)
		}
		if len(matches) != 0 {
			t.Fatalf("expected no pagination module imports, found in: %v", matches)
		}
	})

	t.Run("error_fixture_with_import_is_detected", func(t *testing.T) {
		fixture := `package demo

import "github.com/simp-lee/pagination"`
		if !hasPaginationImport(fixture) {
			t.Fatal("expected pagination import to be detected in fixture")
		}
	})
}

func testModulePresence(t *testing.T, module string) {
	t.Helper()

	t.Run("happy_present_in_real_go_mod", func(t *testing.T) {
		goMod, err := os.ReadFile("go.mod")
		if err != nil {
			t.Fatalf("read go.mod: %v", err)
		}
		if !moduleRequired(string(goMod), module) {
			t.Fatalf("expected module %q to be present in go.mod", module)
		}
	})

	t.Run("error_missing_module_in_fixture", func(t *testing.T) {
		fixture := `module example.com/demo

go 1.25.0

require (
	github.com/gin-gonic/gin v1.11.0
)`
		if moduleRequired(fixture, module) {
			t.Fatalf("expected fixture to not contain module %q", module)
		}
	})
}

func moduleRequired(goModContent, module string) bool {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(module) + `\s+v\S+`)
	return re.MatchString(goModContent)
}

func findPaginationImports(root string) ([]string, error) {
	matches := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == ".git" || name == "vendor" || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		b, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		if hasPaginationImport(string(b)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func hasPaginationImport(content string) bool {
	return strings.Contains(content, `"github.com/simp-lee/pagination"`)
}

package internalcheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const countedPkg = "github.com/ownkit/ownkit-go/pkg/ownkit"

// TestNoCountedValueCopies fails on any declaration, literal, or assignment
// that uses the bare Counted type rather than *Counted. The defining file is
// exempt: the constructor necessarily names the literal once.
func TestNoCountedValueCopies(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, countedPkg)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			t.Fatalf("package load errors: %v", pkg.Errors)
		}

		counted := lookupCounted(pkg.Types)
		if counted == nil {
			t.Fatal("type Counted not found")
		}

		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			info := pkg.TypesInfo

			name := filepath.Base(fset.Position(file.Pos()).Filename)
			if name == "counted.go" {
				continue
			}

			ast.Inspect(file, func(n ast.Node) bool {
				switch node := n.(type) {
				case *ast.CompositeLit:
					if isBareCounted(info.TypeOf(node), counted) {
						pos := fset.Position(node.Pos())
						findings = append(findings, fmt.Sprintf("%s: Counted composite literal copies the count", pos))
					}
				case *ast.Field:
					if node.Type != nil && isBareCounted(info.TypeOf(node.Type), counted) {
						pos := fset.Position(node.Pos())
						findings = append(findings, fmt.Sprintf("%s: declaration of bare Counted; use *Counted", pos))
					}
				case *ast.ValueSpec:
					if node.Type != nil && isBareCounted(info.TypeOf(node.Type), counted) {
						pos := fset.Position(node.Pos())
						findings = append(findings, fmt.Sprintf("%s: variable of bare Counted; use *Counted", pos))
					}
				case *ast.AssignStmt:
					for _, rhs := range node.Rhs {
						if isBareCounted(info.TypeOf(rhs), counted) {
							pos := fset.Position(rhs.Pos())
							findings = append(findings, fmt.Sprintf("%s: assignment copies a Counted by value", pos))
						}
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("counted copy policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func lookupCounted(pkg *types.Package) types.Type {
	obj := pkg.Scope().Lookup("Counted")
	if obj == nil {
		return nil
	}
	return obj.Type()
}

func isBareCounted(typ, counted types.Type) bool {
	if typ == nil {
		return false
	}
	return types.Identical(typ, counted)
}

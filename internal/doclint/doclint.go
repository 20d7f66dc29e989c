// Package doclint reports functions that lack a doc comment.
package doclint

import (
	"bufio"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Finding is one undocumented function.
type Finding struct {
	Pos  token.Position
	Name string
}

// String formats f as file:line:col: message.
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: missing doc comment for function %q", filepath.ToSlash(f.Pos.Filename), f.Pos.Line, f.Pos.Column, f.Name)
}

// MissingDocs walks root and returns every function with a body and no doc
// comment. Directories starting with "_" or "." and testdata are skipped,
// the same set the go tool ignores.
func MissingDocs(root string) ([]Finding, error) {
	fset := token.NewFileSet()
	var findings []Finding
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || isGeneratedFile(path) {
			return nil
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		findings = append(findings, fileFindings(fset, f)...)
		return nil
	})
	return findings, err
}

// fileFindings lists the undocumented functions of one parsed file.
func fileFindings(fset *token.FileSet, f *ast.File) []Finding {
	var out []Finding
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		if fn.Doc == nil || strings.TrimSpace(fn.Doc.Text()) == "" {
			out = append(out, Finding{Pos: fset.Position(fn.Pos()), Name: fn.Name.Name})
		}
	}
	return out
}

// skipDir reports whether the go tool would ignore a directory named name.
func skipDir(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata"
}

// isGeneratedFile checks if the file starts with the standard "Code generated" header.
func isGeneratedFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for i := 0; i < 10 && scanner.Scan(); i++ {
		line := scanner.Text()
		if strings.Contains(line, "Code generated") || strings.Contains(line, "DO NOT EDIT") {
			return true
		}
	}
	return false
}

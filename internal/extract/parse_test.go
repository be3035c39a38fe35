package extract

import (
	"errors"
	"testing"

	"github.com/jorge-barreto/unpack/internal/detect"
	"github.com/jorge-barreto/unpack/internal/fileblocks"
)

const sampleArtifact = `// ===================================================================
// KROK 1: core
// ===================================================================
// File: src/HierarchicalMvvm.Core/ObserverBase.cs
using System;

namespace HierarchicalMvvm.Core
{
    public abstract class ObserverBase
    {
    }
}

// ===================================================================
// KROK 2: demo models
// ===================================================================
using System.ComponentModel;

namespace HierarchicalMvvm.Demo.Models
{
    public class Person
    {
    }
}

// ===================================================================
// File: src/HierarchicalMvvm.Core/HierarchicalMvvm.Core.csproj
/*
<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>

</Project>
*/
// ===================================================================
Closing notes for the reader.
`

func TestParse_Sample(t *testing.T) {
	parsed, err := NewParser(nil, nil).Parse(sampleArtifact)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[string]string{
		"src/HierarchicalMvvm.Core/ObserverBase.cs":              "using System;\n\nnamespace HierarchicalMvvm.Core\n{\n    public abstract class ObserverBase\n    {\n    }\n}",
		"src/HierarchicalMvvm.Demo/Models/Person.cs":             "using System.ComponentModel;\n\nnamespace HierarchicalMvvm.Demo.Models\n{\n    public class Person\n    {\n    }\n}",
		"src/HierarchicalMvvm.Core/HierarchicalMvvm.Core.csproj": "<Project Sdk=\"Microsoft.NET.Sdk\">\n\n  <PropertyGroup>\n    <TargetFramework>net8.0</TargetFramework>\n  </PropertyGroup>\n\n</Project>",
	}
	if len(parsed.Files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(parsed.Files), parsed.Files)
	}
	for p, content := range want {
		if parsed.Files[p] != content {
			t.Fatalf("%s: expected %q, got %q", p, content, parsed.Files[p])
		}
	}
	if len(parsed.Explicit) != 2 || len(parsed.AutoDetected) != 1 {
		t.Fatalf("unexpected classification: explicit=%v auto=%v", parsed.Explicit, parsed.AutoDetected)
	}
	if parsed.AutoDetected[0] != "src/HierarchicalMvvm.Demo/Models/Person.cs" {
		t.Fatalf("unexpected auto-detected %v", parsed.AutoDetected)
	}
	if parsed.SourceOf("src/HierarchicalMvvm.Core/ObserverBase.cs") != fileblocks.SourceExplicit {
		t.Fatal("expected marker file to be explicit")
	}
	if parsed.SourceOf("src/HierarchicalMvvm.Demo/Models/Person.cs") != fileblocks.SourceAutoDetected {
		t.Fatal("expected detected file to be auto-detected")
	}
}

func TestParse_SimpleMarker(t *testing.T) {
	parsed, err := NewParser(nil, nil).Parse("// File: a/B.txt\nhello\nworld\n// ===\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed.Files) != 1 || parsed.Files["a/B.txt"] != "hello\nworld" {
		t.Fatalf("unexpected files: %v", parsed.Files)
	}
}

func TestParse_MarkerBeatsHeuristic(t *testing.T) {
	artifact := `namespace Foo.Core
{
    public class Bar { int heuristic; }
}
// ===
// File: src/HierarchicalMvvm.Core/Bar.cs
// marker version
public class Bar { }
// ===
`
	parsed, err := NewParser(nil, nil).Parse(artifact)
	if err != nil {
		t.Fatal(err)
	}
	got := parsed.Files["src/HierarchicalMvvm.Core/Bar.cs"]
	if got != "// marker version\npublic class Bar { }" {
		t.Fatalf("expected marker content, got %q", got)
	}
}

func TestParse_EmptyArtifact(t *testing.T) {
	for _, in := range []string{"", "  \n\t\r\n"} {
		if _, err := NewParser(nil, nil).Parse(in); !errors.Is(err, ErrEmptyArtifact) {
			t.Fatalf("%q: expected ErrEmptyArtifact, got %v", in, err)
		}
	}
}

func TestMerge_Precedence(t *testing.T) {
	detected := []detect.Block{
		{Path: "a.cs", Text: "heuristic a"},
		{Path: "b.cs", Text: "heuristic b"},
		{Path: "p.csproj", Text: "heuristic p"},
	}
	marked := []fileblocks.FileBlock{
		{Path: "a.cs", Content: "marker a (old)"},
		{Path: "a.cs", Content: "marker a"},
		{Path: "p.csproj", Content: "marker p"},
	}
	project := []fileblocks.FileBlock{{Path: "p.csproj", Content: "project p"}}

	files := Merge(detected, marked, project)
	want := map[string]string{"a.cs": "marker a", "b.cs": "heuristic b", "p.csproj": "project p"}
	for p, c := range want {
		if files[p] != c {
			t.Fatalf("%s: expected %q, got %q", p, c, files[p])
		}
	}
}

func TestClassify(t *testing.T) {
	files := map[string]string{"x/A.cs": "", "B.cs": "", "C.cs": ""}
	explicit, auto := Classify(files, "// File: x/A.cs\n...\n// File: C.cs\n")
	if len(explicit) != 2 || explicit[0] != "C.cs" || explicit[1] != "x/A.cs" {
		t.Fatalf("unexpected explicit %v", explicit)
	}
	if len(auto) != 1 || auto[0] != "B.cs" {
		t.Fatalf("unexpected auto %v", auto)
	}
}

package fileblocks

import (
	"testing"
)

func TestExtractProjectFiles_Csproj(t *testing.T) {
	input := `// ===
// File: src/HierarchicalMvvm.Core/HierarchicalMvvm.Core.csproj
/*
<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>

</Project>
*/
// ===
`
	blocks := ExtractProjectFiles(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Path != "src/HierarchicalMvvm.Core/HierarchicalMvvm.Core.csproj" {
		t.Fatalf("unexpected path %q", blocks[0].Path)
	}
	want := "<Project Sdk=\"Microsoft.NET.Sdk\">\n\n  <PropertyGroup>\n    <TargetFramework>net8.0</TargetFramework>\n  </PropertyGroup>\n\n</Project>"
	if blocks[0].Content != want {
		t.Fatalf("expected %q, got %q", want, blocks[0].Content)
	}
}

func TestExtractProjectFiles_XamlAndCsproj(t *testing.T) {
	input := "// File: App.csproj\n/*\n<Project />\n*/\n\nnoise\n\n// File: Views/MainWindow.xaml\n/*\n<Window>\n</Window>\n*/\n"
	blocks := ExtractProjectFiles(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Path != "App.csproj" || blocks[0].Content != "<Project />" {
		t.Fatalf("block 0: unexpected %+v", blocks[0])
	}
	if blocks[1].Path != "Views/MainWindow.xaml" || blocks[1].Content != "<Window>\n</Window>" {
		t.Fatalf("block 1: unexpected %+v", blocks[1])
	}
}

func TestExtractProjectFiles_IgnoresSourceFiles(t *testing.T) {
	input := "// File: src/A.cs\n/*\npublic class A {}\n*/\n"
	if blocks := ExtractProjectFiles(input); len(blocks) != 0 {
		t.Fatalf("expected 0 blocks, got %d", len(blocks))
	}
}

func TestExtractProjectFiles_RequiresCommentBlock(t *testing.T) {
	input := "// File: App.csproj\n<Project />\n"
	if blocks := ExtractProjectFiles(input); len(blocks) != 0 {
		t.Fatalf("expected 0 blocks, got %d", len(blocks))
	}
}

func TestExtractProjectFiles_EmptyBodyStopsAtOwnClose(t *testing.T) {
	input := "// File: a.csproj\n/*\n*/\n// File: b.csproj\n/*\n<Project/>\n*/\n"
	blocks := ExtractProjectFiles(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Path != "b.csproj" || blocks[0].Content != "<Project/>" {
		t.Fatalf("unexpected block %+v", blocks[0])
	}
}

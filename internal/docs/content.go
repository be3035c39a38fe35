package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with unpack",
		Content: topicQuickstart,
	},
	{
		Name:    "markers",
		Title:   "Artifact Format",
		Summary: "File markers, separators, and comment-wrapped files",
		Content: topicMarkers,
	},
	{
		Name:    "detection",
		Title:   "Auto-detection",
		Summary: "How unmarked source files are found and named",
		Content: topicDetection,
	},
	{
		Name:    "layout",
		Title:   "Layout File",
		Summary: "Customizing paths of auto-detected files",
		Content: topicLayout,
	},
	{
		Name:    "writing",
		Title:   "Writing Files",
		Summary: "Overwrite policy, dry runs, filters, and reports",
		Content: topicWriting,
	},
}

const topicQuickstart = `Quick Start
===========

1. Save the artifact text to a file, e.g. artifact.txt.

2. Preview what would be written:

    unpack --input artifact.txt --dry-run

3. Extract into a directory:

    unpack --input artifact.txt --base-dir ./MyProject

   The artifact may also be piped in:

    pbpaste | unpack --base-dir ./MyProject

4. Run again after editing the artifact. Existing files are skipped
   unless --force is given.
`

const topicMarkers = `Artifact Format
===============

An artifact is plain text holding many files. Each file starts with a
marker line:

    // File: src/App/Program.cs
    using System;
    ...

A file ends at the next marker, at a separator line starting with
"// ===", or at the end of the artifact. Text after a separator and
before the next marker is ignored.

Lines "/*" and "*/" inside a file are dropped, so a file body may be
wrapped in a block comment:

    // File: src/App/App.csproj
    /*
    <Project Sdk="Microsoft.NET.Sdk">
    </Project>
    */

Project and view files (.csproj, .props, .targets, .sln, .xaml) written
this way keep their blank lines exactly.

Step headings such as "// KROK 2: models" or "// STEP 2" are removed
from file bodies, as are separators and markers.
`

const topicDetection = `Auto-detection
==============

Source files without a marker are still found. The artifact is cut
before every using/namespace directive (a run of directives stays
together) and before every marker line. A piece counts as source when
its first non-comment line starts with "using ", "namespace ", "[",
"public ", "internal " or "private ".

The file name comes from the first class, interface, record, enum or
struct declared. A class marked [Generator] wins over earlier types. A
piece mentioning the wrapper attribute (ModelWrapperAttribute by
default) is named after it.

The directory comes from the namespace, see 'unpack docs layout'.
Pieces with no type name are dropped.

Marked files always win over detected ones with the same path. If a
detected path is wrong, add a "// File: <path>" marker.

Run with --debug to see every candidate piece and the decision made.
`

const topicLayout = `Layout File
===========

Paths of auto-detected files come from a layout. 'unpack init' writes
the built-in one to .unpack.yaml; unpack reads .unpack.yaml from the
base directory, or the file given with --layout.

    root: src
    extension: cs
    wrapper-attribute: ModelWrapperAttribute
    generator-suffix: Generator
    roles:
      - match: Core
        dir: src/HierarchicalMvvm.Core
      - match: Demo
        dir: src/HierarchicalMvvm.Demo
        roles:
          - match: ViewModels
            dir: src/HierarchicalMvvm.Demo/ViewModels

Roles are tried in order; the first whose match text appears in the
namespace gives the directory, then its sub-roles are tried the same
way. A namespace matching no role maps to root plus its segments:
Acme.Billing becomes src/Acme/Billing. A type with no namespace goes
directly under root.
`

const topicWriting = `Writing Files
=============

Files are written under --base-dir (default: current directory).
Parent directories are created as needed. Each file is written to a
temporary file and renamed into place.

  --force      overwrite files that already exist
  --dry-run    report what would happen, touch nothing
  --include    only write paths matching a glob (repeatable, ** allowed)
  --exclude    skip paths matching a glob (repeatable)
  --report F   save a YAML report of the run to F

A file that cannot be written is reported and the run continues.
`

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/unpack/internal/config"
	"github.com/jorge-barreto/unpack/internal/ux"
)

const layoutHeader = `# unpack layout: where auto-detected source files are written.
# Run 'unpack docs layout' for the field reference.

`

// Init writes the built-in layout to .unpack.yaml in targetDir.
func Init(targetDir string, force bool) error {
	path := filepath.Join(targetDir, config.DefaultFile)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists in %s (use --force to replace it)", config.DefaultFile, targetDir)
	}

	data, err := config.Default().Marshal()
	if err != nil {
		return fmt.Errorf("rendering layout: %w", err)
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", targetDir, err)
	}
	if err := os.WriteFile(path, append([]byte(layoutHeader), data...), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultFile, err)
	}

	ux.Created(config.DefaultFile)
	fmt.Fprintf(ux.Out, "\n  Next steps:\n")
	fmt.Fprintf(ux.Out, "    1. Edit %s to match your namespaces\n", config.DefaultFile)
	fmt.Fprintf(ux.Out, "    2. Run 'unpack --input <artifact> --dry-run' to preview\n\n")
	return nil
}

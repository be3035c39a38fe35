package config

import (
	"fmt"
	"path"
	"strings"
)

// Validate checks the layout for errors and sets defaults.
func Validate(l *Layout) error {
	def := Default()
	if l.Root == "" {
		l.Root = def.Root
	}
	if l.Extension == "" {
		l.Extension = def.Extension
	}
	l.Extension = strings.TrimPrefix(l.Extension, ".")
	if l.GeneratorSuffix == "" {
		l.GeneratorSuffix = def.GeneratorSuffix
	}

	if err := validDir("root", l.Root); err != nil {
		return err
	}
	if strings.ContainsAny(l.Extension, "/\\ ") {
		return fmt.Errorf("config: extension %q must be a bare file extension", l.Extension)
	}
	return validateRoles(l.Roles, "roles")
}

func validateRoles(roles []Role, where string) error {
	for i, r := range roles {
		at := fmt.Sprintf("%s[%d]", where, i)
		if strings.TrimSpace(r.Match) == "" {
			return fmt.Errorf("config: %s: 'match' is required", at)
		}
		if r.Dir == "" {
			return fmt.Errorf("config: %s (%s): 'dir' is required", at, r.Match)
		}
		if err := validDir(at+".dir", r.Dir); err != nil {
			return err
		}
		if err := validateRoles(r.Roles, at+".roles"); err != nil {
			return err
		}
	}
	return nil
}

func validDir(field, dir string) error {
	if strings.HasPrefix(dir, "/") || strings.Contains(dir, "\\") {
		return fmt.Errorf("config: %s %q must be a relative slash-separated path", field, dir)
	}
	clean := path.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("config: %s %q must not leave the base directory", field, dir)
	}
	return nil
}

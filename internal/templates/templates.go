// Package templates embeds the default manifest templates, dependency list and
// versioned fragments.
package templates

import (
	"embed"
	"io/fs"
)

const (
	// PodfileTemplate is the full manifest template.
	PodfileTemplate = "Podfile"
	// PodspecTemplate is the embedded-spec template.
	PodspecTemplate = "ExpoKit.podspec"
	// DependenciesFile is the ordered dependency list next to the templates.
	DependenciesFile = "dependencies.json"
)

//go:embed data
var embedded embed.FS

var root = mustSub(embedded, "data")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// FS returns the embedded template tree rooted at its top directory.
func FS() fs.FS {
	return root
}

// Read returns the embedded template at path.
func Read(path string) ([]byte, error) {
	return fs.ReadFile(root, path)
}

// Walk walks the embedded templates rooted at dir.
func Walk(dir string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(root, dir, fn)
}

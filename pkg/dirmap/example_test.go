package dirmap_test

import (
	"fmt"

	"github.com/vvka-141/dirmap/internal/files/filesystem"
	"github.com/vvka-141/dirmap/pkg/dirmap"
)

func exampleFS() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile(".gitignore", "bin/\n")
	mfs.AddFile("README.md", "# Project")
	mfs.AddFile("docs/intro.md", "Intro")
	mfs.AddFile("main.go", "package main")
	return mfs
}

// Example demonstrates reading entries by name and by position.
func Example() {
	d, err := dirmap.New("/project", dirmap.WithFileSystem(exampleFS()))
	if err != nil {
		fmt.Println(err)
		return
	}

	keys, _ := d.Keys(false)
	fmt.Println(keys)

	v, _ := d.Get(dirmap.Name("README.md"))
	fmt.Println(v)

	// Positions count hidden entries: .gitignore is 0.
	v, _ = d.Get(dirmap.Position(2))
	switch v := v.(type) {
	case *dirmap.DirectoryMap:
		fmt.Println("directory", v.Path())
	case dirmap.Content:
		fmt.Println("file", v)
	}
	// Output:
	// [README.md docs main.go]
	// # Project
	// directory /project/docs
}

func ExampleDirectoryMap_Get_range() {
	d, _ := dirmap.New("/project", dirmap.WithFileSystem(exampleFS()))

	v, _ := d.Get(dirmap.Range{Start: dirmap.Name("README.md"), Step: 2})
	for _, item := range v.(dirmap.List) {
		fmt.Printf("%#v\n", item)
	}
	// Output:
	// "# Project"
	// "package main"
}

func ExampleDirectoryMap_Items() {
	d, _ := dirmap.New("/project", dirmap.WithFileSystem(exampleFS()))

	for item, err := range d.Items(false) {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s => %v\n", item.Key, item.Value)
	}
	// Output:
	// README.md => # Project
	// docs => /project/docs
	// main.go => package main
}

func ExampleDirectoryMap_Set() {
	d, _ := dirmap.New("/project", dirmap.WithFileSystem(exampleFS()))

	_ = d.Set(dirmap.Name("VERSION"), 3)
	fmt.Println(d.Contains(dirmap.Name("VERSION")))

	v, _ := d.Get(dirmap.Name("VERSION"))
	fmt.Println(v)

	_ = d.Delete(dirmap.Name("VERSION"))
	fmt.Println(d.Contains(dirmap.Name("VERSION")))
	// Output:
	// true
	// 3
	// false
}

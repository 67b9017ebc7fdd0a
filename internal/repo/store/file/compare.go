package file

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"sort"

	"golang.org/x/exp/mmap"

	"github.com/col3name/kotlin-git/internal/fsio"
)

// Equal reports whether two paths hold byte-identical content.
// A missing path on either side is never equal, and so is a file/dir
// type mismatch. Directories compare recursively: same relative file
// set, every file equal. Equal never returns an error.
func Equal(pathA, pathB string) bool {
	fiA, errA := fsio.StatFile(pathA)
	fiB, errB := fsio.StatFile(pathB)
	if errA != nil || errB != nil {
		return false
	}
	if fiA.IsDir() != fiB.IsDir() {
		return false
	}
	if fiA.IsDir() {
		return dirsEqual(pathA, pathB)
	}
	if fiA.Size() != fiB.Size() {
		return false
	}
	return filesEqual(pathA, pathB, fiA.Size())
}

// filesEqual compares two same-sized regular files chunk by chunk
// through memory-mapped readers.
func filesEqual(pathA, pathB string, size int64) bool {
	if size == 0 {
		return true
	}

	ra, err := mmap.Open(pathA)
	if err != nil {
		return false
	}
	defer ra.Close()

	rb, err := mmap.Open(pathB)
	if err != nil {
		return false
	}
	defer rb.Close()

	const chunkSize = 4 << 20
	bufA := make([]byte, chunkSize)
	bufB := make([]byte, chunkSize)

	for off := int64(0); off < size; off += chunkSize {
		n := chunkSize
		if rest := size - off; rest < int64(n) {
			n = int(rest)
		}
		if _, err := ra.ReadAt(bufA[:n], off); err != nil {
			return false
		}
		if _, err := rb.ReadAt(bufB[:n], off); err != nil {
			return false
		}
		if !bytes.Equal(bufA[:n], bufB[:n]) {
			return false
		}
	}
	return true
}

func dirsEqual(dirA, dirB string) bool {
	filesA, err := relativeFiles(dirA)
	if err != nil {
		return false
	}
	filesB, err := relativeFiles(dirB)
	if err != nil {
		return false
	}
	if len(filesA) != len(filesB) {
		return false
	}
	for i := range filesA {
		if filesA[i] != filesB[i] {
			return false
		}
		if !Equal(filepath.Join(dirA, filesA[i]), filepath.Join(dirB, filesB[i])) {
			return false
		}
	}
	return true
}

// relativeFiles lists all regular files under root, sorted, relative
// to root.
func relativeFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

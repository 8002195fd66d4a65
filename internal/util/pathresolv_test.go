//
// GoKnight - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2019-2020 The GoKnight Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFileAbsolute(t *testing.T) {
	f := filepath.Join(t.TempDir(), "resolv.txt")
	assert.Nil(t, os.WriteFile(f, []byte("x"), 0644))

	resolved, err := ResolveFile(f)
	assert.Nil(t, err)
	assert.Equal(t, filepath.Clean(f), resolved)

	_, err = ResolveFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.NotNil(t, err)
}

func TestResolveFileRelative(t *testing.T) {
	// relative paths resolve against the working directory first
	f, err := os.CreateTemp(".", "resolv-*.tmp")
	assert.Nil(t, err)
	name := filepath.Base(f.Name())
	f.Close()
	defer os.Remove(name)

	resolved, err := ResolveFile(name)
	assert.Nil(t, err)
	cwd, _ := os.Getwd()
	assert.Equal(t, filepath.Join(cwd, name), resolved)

	_, err = ResolveFile("does-not-exist-anywhere.tmp")
	assert.NotNil(t, err)
}

func TestResolveFolder(t *testing.T) {
	dir := t.TempDir()
	resolved, err := ResolveFolder(dir)
	assert.Nil(t, err)
	assert.Equal(t, filepath.Clean(dir), resolved)

	// a file is not a folder
	f := filepath.Join(dir, "file.txt")
	assert.Nil(t, os.WriteFile(f, []byte("x"), 0644))
	_, err = ResolveFolder(f)
	assert.NotNil(t, err)
}

func TestResolveCreateFolder(t *testing.T) {
	// an absolute path that exists resolves in place
	dir := t.TempDir()
	resolved, err := ResolveCreateFolder(dir)
	assert.Nil(t, err)
	assert.Equal(t, filepath.Clean(dir), resolved)

	// an absolute path that doesn't exist gets created
	newDir := filepath.Join(dir, "created")
	resolved, err = ResolveCreateFolder(newDir)
	assert.Nil(t, err)
	assert.DirExists(t, resolved)
}

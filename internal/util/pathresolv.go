/*
 * GoKnight - a UCI chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2019-2020 The GoKnight Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package util

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const debug = false

// searchDirs returns, in lookup order, the directories a relative path
// is tried against: the working directory, the directory the running
// executable lives in, and the user's home directory. Any directory
// the OS can't report is silently skipped.
func searchDirs() []string {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(dir))
	}
	if dir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, dir)
	}
	return dirs
}

// resolve finds path under one of searchDirs, using exists to test
// each candidate. An absolute path is checked in place rather than
// searched. Returns notFoundErr if nothing matches.
func resolve(path string, exists func(string) bool, notFoundErr error) (string, error) {
	path = filepath.Clean(path)

	if filepath.IsAbs(path) {
		if exists(path) {
			return path, nil
		}
		return path, notFoundErr
	}

	for _, dir := range searchDirs() {
		candidate := filepath.Join(dir, path)
		if exists(candidate) {
			if debug {
				log.Println("Found", candidate)
			}
			return filepath.Clean(candidate), nil
		}
	}

	if debug {
		log.Println("Not found", path)
	}
	return path, notFoundErr
}

// ResolveFile finds file relative to the working directory, the
// running executable's directory, or the user's home directory (in
// that order), and returns its absolute path. An absolute file is
// checked in place. Returns an error if no match exists.
func ResolveFile(file string) (string, error) {
	return resolve(file, fileExists, fmt.Errorf("file could not be found: %s", file))
}

// ResolveFolder is ResolveFile for directories; it never creates one.
func ResolveFolder(folder string) (string, error) {
	return resolve(folder, folderExists, fmt.Errorf("folder could not be found: %s", folder))
}

// ResolveCreateFolder returns an absolute folderPath as is, creating it
// if it is missing. For a relative folderPath it looks only for a
// directory named after folderPath's last path element, first in the
// working directory and then in the OS temp directory, and creates it in
// the first of the two where that succeeds.
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		return folderPath, os.Mkdir(folderPath, 0755)
	}

	name := filepath.Base(folderPath)
	for _, base := range []string{mustGetwd(), os.TempDir()} {
		candidate := filepath.Join(base, name)
		if folderExists(candidate) {
			return candidate, nil
		}
		if err := os.Mkdir(candidate, 0755); err == nil {
			return candidate, nil
		} else if base == os.TempDir() {
			return candidate, err
		}
	}
	return folderPath, errors.New("could not resolve or create folder")
}

func mustGetwd() string {
	dir, _ := os.Getwd()
	return dir
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsDir()
}

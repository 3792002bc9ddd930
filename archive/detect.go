// Copyright (c) 2025 Niema Moshiri and The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-gameid.
//
// go-gameid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-gameid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-gameid.  If not, see <https://www.gnu.org/licenses/>.

package archive

import (
	"fmt"
	"path/filepath"
	"strings"
)

// packExtensions are file extensions that indicate a container pack file.
// This only includes unambiguous extensions that can be identified without
// header analysis.
var packExtensions = map[string]bool{
	".dat":  true,
	".pak":  true,
	".pack": true,
}

// IsPackFile checks if a filename has a recognized container pack extension.
func IsPackFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return packExtensions[ext]
}

// DetectPackFile finds the first pack file in an archive.
// It scans the archive's file list and returns the path to the first file
// that has a recognized pack extension.
func DetectPackFile(arc Archive) (string, error) {
	files, err := arc.List()
	if err != nil {
		return "", fmt.Errorf("list archive files: %w", err)
	}

	for _, file := range files {
		if IsPackFile(file.Name) {
			return file.Name, nil
		}
	}

	return "", NoPackFilesError{Archive: "archive"}
}
